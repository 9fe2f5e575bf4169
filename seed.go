package main

import (
	"os"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
)

func newSeedCmd(cfg *config.Config) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample content into empty collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			data, err := database.DefaultSeedData()
			if file != "" {
				data, err = loadSeedFile(file)
			}
			if err != nil {
				return err
			}

			result, err := db.Seed(cmd.Context(), data)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(result))
			for name := range result {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				if result[name] < 0 {
					cmd.Printf("%-20s skipped (not empty)\n", name)
					continue
				}
				cmd.Printf("%-20s %d inserted\n", name, result[name])
			}
			log.Info().Msg("Database seeded successfully")
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML seed file (defaults to the built-in sample content)")

	return cmd
}

func newAboutCmd(cfg *config.Config) *cobra.Command {
	about := &cobra.Command{
		Use:   "about",
		Short: "Manage the about information",
	}

	var file string
	apply := &cobra.Command{
		Use:   "apply",
		Short: "Replace the about information with the contents of a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := database.DefaultAboutInfo()
			if file != "" {
				info, err = database.LoadAboutInfoFile(file)
			}
			if err != nil {
				return err
			}

			db, err := openDatabase(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			updated, err := db.AboutRepo().Update(cmd.Context(), info.Patch())
			if err != nil {
				return err
			}
			cmd.Printf("About information updated at %s\n", updated.UpdatedAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	}
	apply.Flags().StringVarP(&file, "file", "f", "", "YAML file with story, competencies, credentials and experience (defaults to the built-in content)")

	about.AddCommand(apply)
	return about
}

func loadSeedFile(path string) (database.SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return database.SeedData{}, err
	}
	return database.LoadSeedData(raw)
}
