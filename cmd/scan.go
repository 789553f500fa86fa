package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khanhnv2901/iotscan/internal/assess"
	"github.com/khanhnv2901/iotscan/internal/dispatch"
	secerrors "github.com/khanhnv2901/iotscan/internal/shared/errors"
)

var scanCmd = &cobra.Command{
	Use:   "scan TOOL TARGET",
	Short: "Run one assessment tool from the command line",
	Long: `Run a single tool against a target and print its report.

Options are passed as repeated --option key=value flags, e.g.

  iotscan scan comprehensive_scan 192.168.1.100 --option scan_intensity=deep
  iotscan scan health_check 192.168.1.0/24 --option check_common_ports=false`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawOptions, _ := cmd.Flags().GetStringArray("option")

		options, err := parseOptions(rawOptions)
		if err != nil {
			return err
		}

		application := newApp()
		text, err := application.dispatcher.Dispatch(cmd.Context(), dispatch.Request{
			Tool:    dispatch.ToolID(args[0]),
			Target:  args[1],
			Options: options,
		})
		if err != nil {
			var rejection *secerrors.RejectionError
			if errors.As(err, &rejection) {
				fmt.Fprintln(cmd.ErrOrStderr(), colorError("rejected:"), rejection.Reason.Error())
				return err
			}
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), text)
		fmt.Fprintln(cmd.ErrOrStderr(), colorSuccess("scan complete"))
		return nil
	},
}

func init() {
	scanCmd.Flags().StringArray("option", nil, "tool option as key=value (repeatable)")
	// a rejected scan is not a usage error
	scanCmd.SilenceUsage = true
}

// parseOptions turns key=value pairs into tool options. Bare "true"/"false"
// values become booleans to match the boolean schema fields.
func parseOptions(pairs []string) (assess.Options, error) {
	options := assess.Options{}
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid option %q, want key=value", pair)
		}
		switch value {
		case "true":
			options[key] = true
		case "false":
			options[key] = false
		default:
			options[key] = value
		}
	}
	return options, nil
}
