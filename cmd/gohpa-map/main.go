package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"

	"github.com/d21d3q/gohpa/internal/policy"
	"github.com/d21d3q/gohpa/pkg/gohpa"
)

var (
	rootCmd = &cobra.Command{
		Use:   "gohpa-map [payload-file...]",
		Short: "Map HPA terminal replies",
		Long: "gohpa-map decodes raw HPA SIP terminal replies using the gohpa library.\n" +
			"Without arguments a single payload is read from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			opts, err := buildOptions(policiesPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return runStdin(cmd.InOrStdin(), out, opts)
			}
			return runFiles(cmd.Context(), out, opts, args)
		},
	}

	policiesPath string
	format       string
	jobs         int
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&policiesPath, "policies", "", "YAML file with extra response-type policies")
	rootCmd.PersistentFlags().StringVar(&format, "format", "json", "output format: json or msgpack")
	rootCmd.PersistentFlags().IntVar(&jobs, "jobs", 4, "number of payload files mapped concurrently")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log skipped frames")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func buildOptions(path string) (gohpa.MapOptions, error) {
	opts := gohpa.MapOptions{Logger: logrus.StandardLogger()}
	if path == "" {
		return opts, nil
	}
	reg := policy.Default().Clone()
	if err := reg.LoadFile(path); err != nil {
		return opts, err
	}
	opts.Registry = reg
	return opts, nil
}

func runStdin(in io.Reader, out io.Writer, opts gohpa.MapOptions) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return encode(out, format, gohpa.MapResponseWithOptions(string(raw), opts))
}

func runFiles(ctx context.Context, out io.Writer, opts gohpa.MapOptions, paths []string) error {
	results, err := mapFiles(ctx, opts, paths, jobs)
	if err != nil {
		return err
	}
	for i, resp := range results {
		logrus.WithField("file", paths[i]).WithField("types", resp.Types()).Debug("mapped payload")
		if err := encode(out, format, resp); err != nil {
			return err
		}
	}
	return nil
}

// mapFiles maps every payload file with at most limit files in flight and
// returns the responses in argument order.
func mapFiles(ctx context.Context, opts gohpa.MapOptions, paths []string, limit int) ([]*gohpa.Response, error) {
	results := make([]*gohpa.Response, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			raw, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			results[i] = gohpa.MapResponseWithOptions(string(raw), opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func encode(w io.Writer, format string, resp *gohpa.Response) error {
	switch format {
	case "json":
		_, err := fmt.Fprintln(w, resp.String())
		return err
	case "msgpack":
		data, err := msgpack.Marshal(resp.Map())
		if err != nil {
			return fmt.Errorf("encode msgpack: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
