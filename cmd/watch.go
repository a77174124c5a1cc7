package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/mariesavch/css-in-go/internal/config"
	"github.com/mariesavch/css-in-go/internal/log"
	"github.com/mariesavch/css-in-go/internal/mount"
	"github.com/mariesavch/css-in-go/internal/sheets"
	"github.com/mariesavch/css-in-go/internal/styles"
	"github.com/mariesavch/css-in-go/internal/theme"
	"github.com/mariesavch/css-in-go/internal/watcher"
)

var (
	watchOut         string
	watchMetricsAddr string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the stylesheet whenever the config file changes",
	Long: `Write the stock stylesheet to --out, then watch the config file and
rewrite it in place after every theme change. Edits that leave the theme
unchanged do not touch the file.

Examples:
  cssgo watch --out dist/styles.css
  cssgo watch --out dist/styles.css --metrics-addr :9090`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "stylesheet file (default: output.path)")
	watchCmd.Flags().StringVar(&watchMetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (default: metrics.addr)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	out := watchOut
	if out == "" {
		out = cfg.Output.Path
	}
	if out == "" {
		return errors.New("watch needs an output file: pass --out or set output.path")
	}
	addr := watchMetricsAddr
	if addr == "" {
		addr = cfg.Metrics.Addr
	}

	pal, err := palette("")
	if err != nil {
		return err
	}
	rt, err := newRuntime(cfg.Tracing)
	if err != nil {
		return err
	}
	defer rt.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if addr != "" {
		srv := &http.Server{
			Addr:              addr,
			Handler:           metricsMux(rt),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.ErrorErr(log.CatConfig, "Metrics server failed", err, "addr", addr)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		fmt.Fprintf(cmd.ErrOrStderr(), "serving metrics on %s/metrics\n", addr)
	}

	target := mount.NewFileTarget(out)
	p := styles.New(target, pal, rt.options()...)
	sheets.RegisterAll(p)
	if err := target.Err(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (theme %s), watching %s\n", out, pal.Name(), configPath)

	w, err := watcher.New(watcher.Config{Path: configPath, Debounce: cfg.Watch.Debounce})
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()
	changes, err := w.Start()
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			reload(cmd, p, target)
		}
	}
}

// reload re-reads the config and applies its theme. Invalid configs are
// reported and leave the stylesheet as it was.
func reload(cmd *cobra.Command, p *styles.Provider[theme.Palette], target *mount.FileTarget) {
	next, err := config.Load(configPath)
	if err != nil {
		log.ErrorErr(log.CatConfig, "Reload failed", err, "path", configPath)
		fmt.Fprintf(cmd.ErrOrStderr(), "config error, keeping current theme: %v\n", err)
		return
	}
	pal, err := next.Theme.Palette()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "theme error, keeping current theme: %v\n", err)
		return
	}
	cfg = next

	if !p.UpdateTheme(pal) {
		fmt.Fprintln(cmd.ErrOrStderr(), "config changed, theme unchanged")
		return
	}
	if err := target.Err(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "rebuilt but could not write %s: %v\n", target.Path(), err)
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "rebuilt %s (theme %s)\n", target.Path(), pal.Name())
}

func metricsMux(rt *runtime) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(rt.registry, promhttp.HandlerOpts{}))
	return mux
}
