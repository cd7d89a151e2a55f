package vita

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitacli/vita/internal/health"
	"github.com/vitacli/vita/internal/model"
	"github.com/vitacli/vita/internal/store"
	"github.com/vitacli/vita/internal/tracker"
)

var (
	profileName       string
	profileAge        int
	profileGender     string
	profileHeight     float64
	profileWeight     float64
	profileGoal       string
	profileConditions []string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your health profile",
}

var profileCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create your profile and compute BMI",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(profileName) == "" {
			return fmt.Errorf("--name is required")
		}
		if profileAge <= 0 || profileHeight <= 0 || profileWeight <= 0 {
			return fmt.Errorf("--age, --height, and --weight must all be > 0")
		}
		gender, err := model.ParseGender(profileGender)
		if err != nil {
			return err
		}
		goal, err := model.ParseGoal(profileGoal)
		if err != nil {
			return err
		}
		conditions, err := parseConditions(profileConditions)
		if err != nil {
			return err
		}

		return withTracker(func(t *tracker.Tracker, _ *store.Store) error {
			if err := t.CreateProfile(tracker.CreateProfileInput{
				Name:             profileName,
				Age:              profileAge,
				Gender:           gender,
				HeightCm:         profileHeight,
				WeightKg:         profileWeight,
				Goal:             goal,
				HealthConditions: conditions,
			}); err != nil {
				return err
			}
			p := t.Profile()
			fmt.Fprintf(cmd.OutOrStdout(), "Profile created for %s\n", p.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "BMI: %.1f (%s)\n", p.BMI, p.BMICategory)
			fmt.Fprintf(cmd.OutOrStdout(), "Daily calorie target: %d kcal\n", health.TargetCalories(*p))
			return nil
		})
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields; BMI is recomputed when height or weight changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return requireProfile(func(t *tracker.Tracker, _ model.UserProfile) error {
			var update tracker.ProfileUpdate
			if cmd.Flags().Changed("name") {
				update.Name = &profileName
			}
			if cmd.Flags().Changed("age") {
				if profileAge <= 0 {
					return fmt.Errorf("--age must be > 0")
				}
				update.Age = &profileAge
			}
			if cmd.Flags().Changed("gender") {
				gender, err := model.ParseGender(profileGender)
				if err != nil {
					return err
				}
				update.Gender = &gender
			}
			if cmd.Flags().Changed("height") {
				if profileHeight <= 0 {
					return fmt.Errorf("--height must be > 0")
				}
				update.HeightCm = &profileHeight
			}
			if cmd.Flags().Changed("weight") {
				if profileWeight <= 0 {
					return fmt.Errorf("--weight must be > 0")
				}
				update.WeightKg = &profileWeight
			}
			if cmd.Flags().Changed("goal") {
				goal, err := model.ParseGoal(profileGoal)
				if err != nil {
					return err
				}
				update.Goal = &goal
			}
			if cmd.Flags().Changed("conditions") {
				conditions, err := parseConditions(profileConditions)
				if err != nil {
					return err
				}
				update.HealthConditions = conditions
			}

			if err := t.UpdateProfile(update); err != nil {
				return err
			}
			p := t.Profile()
			fmt.Fprintf(cmd.OutOrStdout(), "Profile updated\n")
			fmt.Fprintf(cmd.OutOrStdout(), "BMI: %.1f (%s)\n", p.BMI, p.BMICategory)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile and derived metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return requireProfile(func(_ *tracker.Tracker, p model.UserProfile) error {
			conditions := make([]string, 0, len(p.HealthConditions))
			for _, c := range p.HealthConditions {
				conditions = append(conditions, string(c))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", p.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Age: %d\n", p.Age)
			fmt.Fprintf(cmd.OutOrStdout(), "Gender: %s\n", p.Gender)
			fmt.Fprintf(cmd.OutOrStdout(), "Height: %.1f cm\n", p.HeightCm)
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f kg\n", p.WeightKg)
			fmt.Fprintf(cmd.OutOrStdout(), "Goal: %s\n", p.Goal)
			fmt.Fprintf(cmd.OutOrStdout(), "Conditions: %s\n", strings.Join(conditions, ", "))
			fmt.Fprintf(cmd.OutOrStdout(), "BMI: %.1f (%s)\n", p.BMI, p.BMICategory)
			fmt.Fprintf(cmd.OutOrStdout(), "Daily calorie target: %d kcal\n", health.TargetCalories(p))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileCreateCmd, profileUpdateCmd, profileShowCmd)

	for _, c := range []*cobra.Command{profileCreateCmd, profileUpdateCmd} {
		c.Flags().StringVar(&profileName, "name", "", "Your name")
		c.Flags().IntVar(&profileAge, "age", 0, "Age in years")
		c.Flags().StringVar(&profileGender, "gender", "", "Gender: male, female, or other")
		c.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
		c.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
		c.Flags().StringVar(&profileGoal, "goal", "", "Goal: weightLoss, muscleGain, or maintenance")
		c.Flags().StringSliceVar(&profileConditions, "conditions", nil, "Health conditions: none, diabetes, hypertension, thyroid, heart, other")
	}
	_ = profileCreateCmd.MarkFlagRequired("name")
	_ = profileCreateCmd.MarkFlagRequired("gender")
	_ = profileCreateCmd.MarkFlagRequired("goal")
}
