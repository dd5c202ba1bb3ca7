package cmd

import (
	"bytes"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/st4info/foundation/core/log"
	"github.com/msto63/st4info/foundation/utils/filex"
	"github.com/msto63/st4info/internal/render"
	"github.com/msto63/st4info/internal/watch"
)

var (
	renderTemplateName string
	renderOutput       string
	renderData         string
	renderWrap         int
	renderWatch        bool
)

var renderCmd = &cobra.Command{
	Use:   "render <template-file>",
	Short: "Expand a template file",
	Long: `Expands a template of a template file against a data model. The info
object is available to the template under the configured argument name
(default: info).

The result is written to the output file or to stdout. The command fails
if the template reported an error.

Examples:
  st4info render frames.tmpl --data bus.yaml
  st4info render frames.tmpl --name body --data bus.json -o frames.c
  st4info render frames.tmpl --wrap 80 --log-level debug
  st4info render frames.tmpl -d bus.yaml -o frames.c --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderTemplateName, "name", "n", "", "template to expand (default: the file itself)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default: stdout)")
	renderCmd.Flags().StringVarP(&renderData, "data", "d", "", "data model file: YAML, TOML or JSON")
	renderCmd.Flags().IntVar(&renderWrap, "wrap", -1, "wrap column, 0 disables wrapping (default: from config)")
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "render again whenever template, data or config file changes")
}

func runRender(cmd *cobra.Command, args []string) error {
	err := renderOnce(cmd, args[0])
	if !renderWatch {
		return err
	}
	if err != nil {
		cmd.PrintErrln("Error:", err)
	}

	paths := []string{args[0]}
	if renderData != "" {
		paths = append(paths, renderData)
	}
	if cfgFile != "" {
		paths = append(paths, cfgFile)
	}

	r, err := newRun(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	w, err := watch.New(paths, r.logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	r.logger.Info("watching for changes, press Ctrl+C to stop")
	return w.Run(ctx, func(changed []string) {
		r.logger.Debug("rendering again", mdwlog.Field("changed", changed))
		// A failed run does not end watching
		if err := renderOnce(cmd, args[0]); err != nil {
			cmd.PrintErrln("Error:", err)
		}
	})
}

// renderOnce is one template expansion run with its own info object
func renderOnce(cmd *cobra.Command, templatePath string) error {
	r, err := newRun(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	inf, err := r.newInfo()
	if err != nil {
		return err
	}

	data := map[string]any{}
	if renderData != "" {
		if data, err = render.LoadData(renderData); err != nil {
			r.report(mdwlog.LevelError, err.Error())
			return r.result("template expansion")
		}
	}

	wrap := r.cfg.Template.WrapColumn
	if renderWrap >= 0 {
		wrap = renderWrap
	}
	if renderOutput != "" {
		inf.SetOutputInfo(renderOutput)
	}

	renderer := render.New(inf, r.logger, render.Options{
		ArgNameInfo: r.cfg.Template.ArgNameInfo,
		WrapColumn:  wrap,
	})

	var out bytes.Buffer
	if err := renderer.RenderFile(&out, templatePath, renderTemplateName, data); err != nil {
		r.report(mdwlog.LevelError, err.Error())
		return r.result("template expansion")
	}

	// No artifact from a failed expansion
	if r.counter.Failed() {
		return r.result("template expansion")
	}

	if err := writeOutput(cmd, renderOutput, out.Bytes()); err != nil {
		r.report(mdwlog.LevelFatal, "cannot write output: "+err.Error())
	}
	return r.result("template expansion")
}

func writeOutput(cmd *cobra.Command, path string, content []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(content)
		return err
	}
	return filex.WriteFile(path, content, 0644)
}
