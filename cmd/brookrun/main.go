// Command brookrun evaluates a small fixed set of sample brook programs,
// built directly as ast.Prog values. Lexing and parsing brook source
// text are out of scope for this module, so there is no source-file
// flag here — brookrun exists to exercise the evaluator end to end, the
// way the teacher's cmd/main.go drives sx by hand from Go rather than
// from an external harness.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/brook-lang/brook/ast"
	"github.com/brook-lang/brook/environ"
	"github.com/brook-lang/brook/eval"
	"github.com/brook-lang/brook/value"
)

// traceObserver prints one debug line per AST node the evaluator visits,
// grounded on the teacher's mainEngine.BeforeCompute trace style.
type traceObserver struct {
	log *slog.Logger
}

func (t traceObserver) WillEvaluate(expr ast.Expr, env *environ.Frame, depth int) {
	t.log.Debug("evaluate", "node", fmt.Sprintf("%T", expr), "depth", depth, "env", env.String())
}

func main() {
	var (
		sampleName string
		trace      bool
		metricsAddr string
	)

	root := &cobra.Command{
		Use:   "brookrun",
		Short: "Run one of brookrun's built-in sample brook programs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, ok := samples[sampleName]
			if !ok {
				return fmt.Errorf("unknown sample %q (known: %v)", sampleName, sampleNames())
			}

			opts := []eval.Option{}
			if trace {
				logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
				opts = append(opts, eval.WithLogger(logger), eval.WithObserver(traceObserver{log: logger}))
			}

			reg := prometheus.NewRegistry()
			metrics := eval.NewMetrics(reg)
			opts = append(opts, eval.WithMetrics(metrics))

			if metricsAddr != "" {
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
				server := &http.Server{Addr: metricsAddr, Handler: mux}
				go func() {
					if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						fmt.Fprintln(os.Stderr, "metrics server:", err)
					}
				}()
			}

			e := eval.NewEvaluator(opts...)
			result := e.Run(prog)
			if errVal, ok := value.GetError(result); ok {
				fmt.Fprintln(os.Stderr, errVal.String())
				os.Exit(1)
			}
			fmt.Println(result.String())
			return nil
		},
	}

	root.Flags().StringVar(&sampleName, "sample", "fib", fmt.Sprintf("sample program to run: %v", sampleNames()))
	root.Flags().BoolVar(&trace, "trace", false, "log each expression node as it is evaluated")
	root.Flags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
