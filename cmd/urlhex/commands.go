package main

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/indigo-web/strutils/config"
	"github.com/indigo-web/strutils/hexdecode"
	"github.com/indigo-web/strutils/urlsplit"
	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

type Logger interface {
	Printf(fmt string, v ...any)
}

var errFailedInputs = errors.New("some inputs could not be processed")

// execute runs the command, reporting any returned error through the logger, as cobra
// itself is silenced.
func execute(cmd *cobra.Command, logger Logger) error {
	err := cmd.Execute()
	if err != nil {
		logger.Printf("%s", err)
	}

	return err
}

func newRootCmd(logger Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "urlhex",
		Short:         "Split URLs and decode hex strings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSplitCmd(logger), newHexCmd(logger))

	return root
}

func newSplitCmd(logger Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "split <url>...",
		Short: "Print scheme, host, port and path of every URL as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			splitter := urlsplit.NewSplitter(config.Default().URL)

			return each(cmd.OutOrStdout(), logger, args, func(url string) (any, error) {
				return splitter.Split(url)
			})
		},
	}
}

type hexResult struct {
	Input string `json:"input"`
	Bytes []uint `json:"bytes"`
}

func newHexCmd(logger Logger) *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "hex <hex>...",
		Short: "Decode every hex string and print its bytes as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decoder := hexdecode.NewDecoder(cfg.Hex)

			return each(cmd.OutOrStdout(), logger, args, func(str string) (any, error) {
				decoded, err := decoder.Decode(str)
				if err != nil {
					return nil, err
				}

				result := hexResult{Input: str, Bytes: make([]uint, len(decoded))}
				for i, b := range decoded {
					result.Bytes[i] = uint(b)
				}

				return result, nil
			})
		},
	}

	cmd.Flags().BoolVar(&cfg.Hex.Strict, "strict", cfg.Hex.Strict, "reject non-hex characters")

	return cmd
}

// each writes one JSON line per successfully processed input. Failures are logged and
// don't stop processing of the rest.
func each(w io.Writer, logger Logger, inputs []string, process func(string) (any, error)) error {
	encoder := json.ConfigDefault.NewEncoder(w)
	failed := 0

	for _, input := range inputs {
		value, err := process(input)
		if err != nil {
			logger.Printf("%s", err)
			failed++
			continue
		}

		if err = encoder.Encode(value); err != nil {
			return errors.Wrap(err, "write output")
		}
	}

	if failed > 0 {
		return errors.Wrapf(errFailedInputs, "%d of %d", failed, len(inputs))
	}

	return nil
}
