package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/types"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage skills on the selected résumé",
}

var skillAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillAdd,
}

var skillUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a skill on the selected résumé",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillUpdate,
}

var skillRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillRemove,
}

var (
	skillName  string
	skillLevel string
)

func init() {
	skillAddCmd.Flags().StringVar(&skillLevel, "level", "", "Proficiency (beginner, intermediate, advanced, expert)")

	skillUpdateCmd.Flags().StringVar(&skillName, "name", "", "New skill name")
	skillUpdateCmd.Flags().StringVar(&skillLevel, "level", "", "New proficiency (beginner, intermediate, advanced, expert)")

	skillCmd.AddCommand(skillAddCmd, skillUpdateCmd, skillRemoveCmd)
	rootCmd.AddCommand(skillCmd)
}

func runSkillAdd(cmd *cobra.Command, args []string) error {
	if _, err := app.RequireUser(cmd.Context()); err != nil {
		return err
	}
	current, err := app.RequireCurrentCV()
	if err != nil {
		return err
	}

	level, err := types.ParseSkillLevel(skillLevel)
	if err != nil {
		return err
	}

	skill, err := app.Skills.Create(cmd.Context(), &types.CreateSkillRequest{
		CV:    current.ID,
		Name:  args[0],
		Level: level,
	})
	if err != nil {
		return fmt.Errorf("failed to add skill: %w", err)
	}

	if _, err := app.RefreshCurrentCV(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Added skill #%d (%s).\n", skill.ID, skill.Name)
	return nil
}

func runSkillUpdate(cmd *cobra.Command, args []string) error {
	if _, err := app.RequireUser(cmd.Context()); err != nil {
		return err
	}
	current, err := app.RequireCurrentCV()
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid skill id %q", args[0])
	}

	// Patches carry the full payload; unchanged fields keep the values
	// the selected résumé already holds.
	var existing *types.Skill
	for i := range current.Skills {
		if current.Skills[i].ID == id {
			existing = &current.Skills[i]
			break
		}
	}
	if existing == nil {
		return fmt.Errorf("skill %d is not on the selected résumé", id)
	}
	if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("level") {
		return fmt.Errorf("nothing to update; pass --name or --level")
	}

	req := &types.CreateSkillRequest{
		CV:    current.ID,
		Name:  existing.Name,
		Level: types.LevelForScore(existing.Level),
	}
	if cmd.Flags().Changed("name") {
		req.Name = skillName
	}
	if cmd.Flags().Changed("level") {
		level, err := types.ParseSkillLevel(skillLevel)
		if err != nil {
			return err
		}
		req.Level = level
	}

	skill, err := app.Skills.Update(cmd.Context(), id, req)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}

	if _, err := app.RefreshCurrentCV(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Updated skill #%d (%s).\n", skill.ID, skill.Name)
	return nil
}

func runSkillRemove(cmd *cobra.Command, args []string) error {
	if _, err := app.RequireUser(cmd.Context()); err != nil {
		return err
	}
	if _, err := app.RequireCurrentCV(); err != nil {
		return err
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid skill id %q", args[0])
	}

	if err := app.Skills.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to remove skill: %w", err)
	}

	if _, err := app.RefreshCurrentCV(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Removed skill #%d.\n", id)
	return nil
}
