// Command qudoku deals, combines and derives secrets from Shamir shares over
// secp256k1.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/luxfi/qudoku/pkg/hash"
	"github.com/luxfi/qudoku/pkg/math/curve"
	"github.com/luxfi/qudoku/pkg/sharing/encoding"
	"github.com/spf13/cobra"
)

// options holds the flags shared by every subcommand.
type options struct {
	hashName   string
	parityName string
	formatName string
	verbose    bool

	logger *slog.Logger
}

func (o *options) hashFunction() (hash.Function, error) {
	return hash.ParseFunction(o.hashName)
}

func (o *options) parity() (curve.Parity, error) {
	switch o.parityName {
	case "even":
		return curve.EvenY, nil
	case "odd":
		return curve.OddY, nil
	default:
		return 0, fmt.Errorf("unknown parity %q, want even or odd", o.parityName)
	}
}

func (o *options) format() (encoding.Format, error) {
	return encoding.ParseFormat(o.formatName)
}

// pointFor maps label to the point Q of its point-sharing polynomial.
func (o *options) pointFor(group curve.Curve, label string) (curve.Point, error) {
	fn, err := o.hashFunction()
	if err != nil {
		return nil, err
	}
	parity, err := o.parity()
	if err != nil {
		return nil, err
	}
	return hash.ToPoint(group, []byte(label), hash.WithFunction(fn), hash.WithParity(parity))
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "qudoku",
		Short: "Shamir secret sharing with point-derived secrets",
		Long: `Deal Shamir shares of a secret scalar over secp256k1, recombine them,
and derive any number of independent secrets from the same shares by
multiplying the shared polynomial with points hashed from labels.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.hashName, "hash", hash.SHA256.String(), "Hash function: sha256, sha3-256, blake3")
	rootCmd.PersistentFlags().StringVar(&opts.parityName, "parity", curve.EvenY.String(), "Parity of hashed points: even, odd")
	rootCmd.PersistentFlags().StringVarP(&opts.formatName, "format", "f", string(encoding.JSON), "Share file format: json, cbor")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(
		newDealCmd(opts),
		newCombineCmd(opts),
		newDeriveCmd(opts),
		newHashToPointCmd(opts),
		newInfoCmd(opts),
	)
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
