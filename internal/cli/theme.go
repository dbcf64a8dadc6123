package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"staycation/internal/browse"
)

func NewThemeCommand(rootOpts *RootOptions) *cobra.Command {
	var prefsPath string
	cmd := &cobra.Command{
		Use:       "theme [light|dark|system]",
		Short:     "Show or set the display theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(browse.ThemeLight), string(browse.ThemeDark), string(browse.ThemeSystem)},
		RunE: func(cmd *cobra.Command, args []string) error {
			if prefsPath == "" {
				p, err := browse.DefaultPrefsPath()
				if err != nil {
					return err
				}
				prefsPath = p
			}
			prefs := browse.NewFilePrefs(prefsPath)
			return runTheme(prefs, args, cmd)
		},
	}
	cmd.Flags().StringVar(&prefsPath, "prefs", "", "preferences file (default: user config dir)")
	return cmd
}

func runTheme(prefs browse.Prefs, args []string, cmd *cobra.Command) error {
	s, err := prefs.Load()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		t, err := browse.ParseTheme(args[0])
		if err != nil {
			return err
		}
		s.Theme = t
		if err := prefs.Save(s); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), s.Theme)
	return nil
}
