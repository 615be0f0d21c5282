package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := newApp()

	rootCmd := &cobra.Command{
		Use:           "wcb",
		Short:         "Webex Claude bridge (wcb): chat with local Claude sessions from Webex",
		Long:          "wcb polls a Webex bot's direct rooms and relays messages to resumable Claude CLI sessions on this machine, replying with the CLI's output.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.flags.configPath, "config", "", "Config file (default ~/.config/wcb/config.toml)")
	flags.StringVar(&app.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&app.flags.logFormat, "log-format", "", "Log format: console, json")

	rootCmd.AddCommand(
		newVersionCmd(),
		newInitCmd(app),
		newRunCmd(app),
		newSessionsCmd(app),
		newTokenCmd(app),
		newAllowCmd(app),
		newDoctorCmd(app),
	)

	return rootCmd
}
