package cli

import (
	"fmt"
	"os"

	"github.com/aberg/wordbergler/internal/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// profileSkeleton is the commented starting point written by
// `wordbergler profile init`
const profileSkeleton = `# WordBergler target profile. Every field is optional; blank fields
# simply contribute nothing. Multi-word entries are fine.

# Target full names ("John Smith")
names: []

# Family members and partners
relatives: []

# Friends, pets, colleagues
others: []

# Favorite brands
brands: []

# Favorite TV shows and movies
shows: []

# Favorite actors and musicians
actors: []

# Hobbies and sports teams
hobbies: []

# Significant dates as digit strings ("0714", "1990")
dates: []

# Phone numbers in any format
phones: []

# Known PINs and favorite symbols, mixed ("1234", "!")
pins: []

# Extra base words used as-is ("Pass", "Secret")
extra: []

# Target birth year (0 = unknown)
birth_year: 0
`

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage target profiles",
	Long: `Manage the YAML profiles that seed wordlist generation.

A profile holds the personal facts known about a target: names,
relatives, favorite brands and shows, hobbies, important dates, phone
numbers, PINs and extra base words. Every field is optional.`,
}

var profileInitCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Create a profile skeleton",
	Long:  `Create a commented profile skeleton at the given path, ready to fill in.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		path := args[0]

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("profile already exists: %s", path)
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("error creating profile: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close profile: %w", closeErr)
			}
		}()

		if _, err = f.WriteString(profileSkeleton); err != nil {
			return fmt.Errorf("error writing profile: %w", err)
		}

		fmt.Printf("✓ Created profile skeleton: %s\n", path)
		fmt.Printf("\nFill in the facts you know, then run:\n")
		fmt.Printf("  wordbergler generate --profile %s\n", path)
		fmt.Printf("\n")

		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show <path>",
	Short: "Show a profile with derived counts",
	Long:  `Display a profile file and the pool sizes it would seed.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := model.LoadProfile(args[0])
		if err != nil {
			return err
		}

		yamlData, err := yaml.Marshal(profile)
		if err != nil {
			return fmt.Errorf("error marshaling profile: %w", err)
		}

		fmt.Println("═══════════════════════════════════════════════════════════")
		fmt.Printf("  Profile: %s\n", args[0])
		fmt.Println("═══════════════════════════════════════════════════════════")
		fmt.Println()
		fmt.Println(string(yamlData))
		fmt.Printf("People: %d, titles: %d, extra bases: %d\n",
			len(profile.AllNames()), len(profile.AllTitles()), len(profile.Extra))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileInitCmd)
	profileCmd.AddCommand(profileShowCmd)
}
