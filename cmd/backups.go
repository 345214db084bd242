package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/huffs-projects/themectl/internal/deploy"
)

var cleanDays int

var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "Manage the backup files deployments leave behind",
}

var backupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backup files under the config directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadSettings(); err != nil {
			return err
		}
		backups, err := deploy.ListBackups(deploy.DefaultBaseDir())
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			fmt.Println("no backups found")
			return nil
		}
		for _, b := range backups {
			fmt.Printf("  %s  %s (%d bytes)\n",
				b.ModTime.Format("2006-01-02 15:04"), b.Path, b.Size)
		}
		return nil
	},
}

var backupsCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove backups older than a cutoff",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadSettings(); err != nil {
			return err
		}
		maxAge := time.Duration(cleanDays) * 24 * time.Hour
		removed, err := deploy.CleanBackups(deploy.DefaultBaseDir(), maxAge, dryRun)
		if err != nil {
			return err
		}
		verb := "removed"
		if dryRun {
			verb = "would remove"
		}
		for _, b := range removed {
			fmt.Printf("  %s %s %s\n", okMark(), verb, b.Path)
		}
		fmt.Printf("%s %d backup(s) older than %d day(s)\n", verb, len(removed), cleanDays)
		return nil
	},
}

func init() {
	backupsCleanCmd.Flags().IntVar(&cleanDays, "days", 30, "remove backups older than this many days")
	backupsCmd.AddCommand(backupsListCmd)
	backupsCmd.AddCommand(backupsCleanCmd)
	rootCmd.AddCommand(backupsCmd)
}
