package main

import (
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/luxfi/qudoku/pkg/hash"
	"github.com/luxfi/qudoku/pkg/math/curve"
	"github.com/luxfi/qudoku/pkg/party"
	"github.com/luxfi/qudoku/pkg/sharing"
	"github.com/luxfi/qudoku/pkg/sharing/encoding"
	"github.com/spf13/cobra"
)

var group = curve.Secp256k1{}

func newDealCmd(opts *options) *cobra.Command {
	var (
		threshold int
		holders   []string
		secretHex string
		outDir    string
		labels    []string
	)

	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Split a secret into shares",
		Long: `Sample a random polynomial whose constant term is the secret and write one
secret share file per holder. For every --point label, point share files
for the polynomial multiplied by the label's hashed point are written too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := opts.format()
			if err != nil {
				return err
			}

			ids := make([]party.ID, len(holders))
			for i, h := range holders {
				if err := fileComponent("holder", h); err != nil {
					return err
				}
				ids[i] = party.ID(h)
			}
			if len(party.NewIDSlice(ids)) != len(ids) {
				return errors.New("holders must be distinct")
			}
			if threshold > len(ids) {
				return fmt.Errorf("threshold %d exceeds the number of holders %d", threshold, len(ids))
			}
			for _, label := range labels {
				if err := fileComponent("label", label); err != nil {
					return err
				}
			}

			var secret curve.Scalar
			if secretHex != "" {
				if secret, err = parseScalar(group, secretHex); err != nil {
					return err
				}
			}
			poly, err := sharing.RandomPolynomial(rand.Reader, group, secret, threshold)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0700); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			shares, err := sharing.IssuePartyShares[curve.Scalar](cmd.Context(), group, poly, ids)
			if err != nil {
				return err
			}
			for _, id := range ids {
				f, err := encoding.FromSecretShare(group, id, shares[id])
				if err != nil {
					return err
				}
				path, err := writeShareFile(outDir, string(id)+".secret", f, format)
				if err != nil {
					return err
				}
				opts.logger.Debug("wrote secret share", "holder", id, "path", path)
			}

			for _, label := range labels {
				q, err := opts.pointFor(group, label)
				if err != nil {
					return err
				}
				pointShares, err := sharing.IssuePartyShares[curve.Point](cmd.Context(), group, sharing.MulStandard(poly, q), ids)
				if err != nil {
					return err
				}
				for _, id := range ids {
					f, err := encoding.FromPointShare(group, id, label, pointShares[id])
					if err != nil {
						return err
					}
					path, err := writeShareFile(outDir, string(id)+"."+label+".point", f, format)
					if err != nil {
						return err
					}
					opts.logger.Debug("wrote point share", "holder", id, "label", label, "path", path)
				}
			}

			commitment, err := encoding.FromCommitment(group, sharing.Commit(group, poly))
			if err != nil {
				return err
			}
			data, err := encoding.MarshalCommitment(commitment, format)
			if err != nil {
				return fmt.Errorf("failed to marshal commitment: %w", err)
			}
			commitmentPath := filepath.Join(outDir, "commitment."+string(format))
			if err := os.WriteFile(commitmentPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write commitment: %w", err)
			}
			publicKey, err := pointHex(poly.Constant().ActOnBase())
			if err != nil {
				return err
			}

			opts.logger.Info("dealt shares", "holders", len(ids), "threshold", threshold, "labels", len(labels), "dir", outDir)
			fmt.Fprintf(cmd.OutOrStdout(), "Dealt %d shares with threshold %d to %s\n", len(ids), threshold, outDir)
			fmt.Fprintf(cmd.OutOrStdout(), "Public key: %s\n", publicKey)
			return nil
		},
	}

	cmd.Flags().IntVarP(&threshold, "threshold", "t", 0, "Number of shares needed to recover the secret (required)")
	cmd.Flags().StringSliceVarP(&holders, "holders", "H", nil, "Shareholder IDs (required)")
	cmd.Flags().StringVarP(&secretHex, "secret", "s", "", "Secret scalar in hex (random if empty)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory for share files")
	cmd.Flags().StringSliceVarP(&labels, "point", "p", nil, "Labels of points to issue point shares for")
	cmd.MarkFlagRequired("threshold")
	cmd.MarkFlagRequired("holders")
	return cmd
}

func newCombineCmd(opts *options) *cobra.Command {
	var at, commitmentPath string

	cmd := &cobra.Command{
		Use:   "combine <share-file>...",
		Short: "Recover the secret from secret shares",
		Long: `Interpolate the secret-sharing polynomial through the given secret shares and
print its value at --at, which defaults to zero where the secret lives.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseScalar(group, at)
			if err != nil {
				return err
			}

			shares := make([]sharing.SecretShare, len(args))
			for i, path := range args {
				f, err := readShareFile(path)
				if err != nil {
					return err
				}
				if shares[i], err = f.SecretShare(group); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}

			if commitmentPath != "" {
				commitment, err := readCommitment(commitmentPath)
				if err != nil {
					return err
				}
				for i, share := range shares {
					if !sharing.VerifyShare(commitment, share) {
						return fmt.Errorf("%s: share does not match the commitment", args[i])
					}
				}
				opts.logger.Debug("verified shares", "commitment", commitmentPath)
			}

			poly := sharing.Interpolate(group, shares)
			if err := poly.Validate(); err != nil {
				return err
			}
			value, err := poly.TryEvaluate(x)
			if err != nil {
				return err
			}
			opts.logger.Debug("interpolated secret polynomial", "shares", len(shares), "degree", poly.Degree())

			out, err := scalarHex(value)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "00", "Input to evaluate the polynomial at, in hex")
	cmd.Flags().StringVarP(&commitmentPath, "commitment", "c", "", "Commitment file to verify shares against")
	return cmd
}

func newDeriveCmd(opts *options) *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "derive <share-file>...",
		Short: "Derive the secret bound to a label",
		Long: `Interpolate the point-sharing polynomial for --label and print the hash of its
value at zero. Secret shares are multiplied by the label's point; point
shares must have been issued for the same label.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := opts.hashFunction()
			if err != nil {
				return err
			}
			q, err := opts.pointFor(group, label)
			if err != nil {
				return err
			}

			shares := make([]sharing.PointShare, len(args))
			for i, path := range args {
				f, err := readShareFile(path)
				if err != nil {
					return err
				}
				switch f.Kind {
				case encoding.KindSecret:
					share, err := f.SecretShare(group)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					shares[i] = sharing.ToPointShare(share, q)
				case encoding.KindPoint:
					if f.Label != label {
						return fmt.Errorf("%s: point share was issued for label %q, not %q", path, f.Label, label)
					}
					if shares[i], err = f.PointShare(group); err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
				default:
					return fmt.Errorf("%s: %w: %q", path, encoding.ErrKindMismatch, f.Kind)
				}
			}

			poly := sharing.InterpolatePoints(group, shares)
			if err := poly.Validate(); err != nil {
				return err
			}
			secret, err := sharing.DeriveSecretWith(fn, poly, group.NewScalar())
			if err != nil {
				return err
			}
			opts.logger.Debug("derived secret", "label", label, "shares", len(shares), "hash", fn)

			fmt.Fprintf(cmd.OutOrStdout(), "%x\n", secret)
			return nil
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "Label of the point the secret is bound to (required)")
	cmd.MarkFlagRequired("label")
	return cmd
}

func newHashToPointCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "hash-to-point <input>...",
		Short: "Hash inputs to curve points",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, input := range args {
				p, err := opts.pointFor(group, input)
				if err != nil {
					return err
				}
				out, err := pointHex(p)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
}

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display curve and encoding information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Curve:           %s\n", group.Name())
			fmt.Fprintf(w, "Order:           %x\n", group.Order().Bytes())
			fmt.Fprintf(w, "Hash functions:  %s, %s, %s\n", hash.SHA256, hash.SHA3_256, hash.BLAKE3)
			fmt.Fprintf(w, "Share formats:   %s, %s\n", encoding.JSON, encoding.CBOR)
			fmt.Fprintf(w, "Share version:   %d\n", encoding.Version)
			fmt.Fprintf(w, "Hash/parity:     %s/%s\n", opts.hashName, opts.parityName)
			return nil
		},
	}
}
