package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/clubpro-dev/qistadmin/internal/listctl"
	"github.com/clubpro-dev/qistadmin/internal/screens"
	"github.com/clubpro-dev/qistadmin/internal/session"
	"github.com/clubpro-dev/qistadmin/internal/toast"
	"github.com/clubpro-dev/qistadmin/pkg/config"
	sdk "github.com/clubpro-dev/qistadmin/sdk"
	"github.com/clubpro-dev/qistadmin/sdk/client"
)

// appCtx bundles the per-invocation wiring: resolved connection, session
// manager, API client and notifier.
type appCtx struct {
	cmd      *cobra.Command
	resolved config.Resolved
	sess     *session.Manager
	cli      *client.Client
	notifier toast.Notifier
	logger   *zap.SugaredLogger
}

// tokenSource prefers an explicit flag/env token over the session's.
type tokenSource struct {
	override string
	sess     *session.Manager
}

func (t tokenSource) Token() string {
	if t.override != "" {
		return t.override
	}
	return t.sess.Token()
}

func newAppCtx(cmd *cobra.Command) (*appCtx, error) {
	resolved, err := config.Resolve(cmd)
	if err != nil {
		return nil, err
	}
	notifier := &toast.Writer{Out: cmd.ErrOrStderr()}
	log := appLogger(cmd)
	sess := session.New(session.Config{
		Store:    config.TokenStore{Profile: resolved.Profile},
		Notifier: notifier,
		Logger:   log,
	})
	sess.Restore()
	cli := client.New(resolved.APIURL, client.WithTokenSource(tokenSource{override: flagToken(cmd), sess: sess}))
	return &appCtx{cmd: cmd, resolved: resolved, sess: sess, cli: cli, notifier: notifier, logger: log}, nil
}

// appLogger is quiet by default; --verbose switches to zap's development
// output on stderr.
func appLogger(cmd *cobra.Command) *zap.SugaredLogger {
	verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
	if !verbose {
		return zap.NewNop().Sugar()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

func flagToken(cmd *cobra.Command) string {
	tok, _ := cmd.Root().PersistentFlags().GetString("token")
	if tok == "" {
		tok = os.Getenv("QISTCTL_TOKEN")
	}
	return tok
}

// requireAuth guards resource commands the way the admin area requires a
// logged-in session. An explicit token flag counts as a session.
func (a *appCtx) requireAuth() error {
	if flagToken(a.cmd) != "" {
		return nil
	}
	if err := a.sess.Require(); err != nil {
		return fmt.Errorf("%w (run `qistctl login`)", err)
	}
	return nil
}

// confirmer prompts on stdin unless --yes was given.
func (a *appCtx) confirmer() listctl.Confirmer {
	yes, _ := a.cmd.Root().PersistentFlags().GetBool("yes")
	return listctl.ConfirmFunc(func(prompt string) bool {
		if yes {
			return true
		}
		fmt.Fprintf(a.cmd.OutOrStdout(), "%s [y/N]: ", prompt)
		rd := bufio.NewReader(a.cmd.InOrStdin())
		line, _ := rd.ReadString('\n')
		line = strings.ToLower(strings.TrimSpace(line))
		return line == "y" || line == "yes"
	})
}

// screenDef resolves a screen definition with any --screens overrides
// applied.
func (a *appCtx) screenDef(resource string) (screens.Definition, error) {
	defs := screens.All()
	if path, _ := a.cmd.Root().PersistentFlags().GetString("screens"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return screens.Definition{}, err
		}
		defs, err = screens.ApplyYAML(defs, data)
		if err != nil {
			return screens.Definition{}, err
		}
	}
	for _, d := range defs {
		if d.Resource == resource {
			return d, nil
		}
	}
	return screens.Definition{}, fmt.Errorf("unknown screen: %s", resource)
}

// printPage renders one page of rows as a table or JSON per --output.
func (a *appCtx) printPage(def screens.Definition, rows []map[string]string, pg sdk.Pagination) error {
	format, _ := a.cmd.Root().PersistentFlags().GetString("output")
	if format == "json" {
		b, err := json.MarshalIndent(map[string]any{"data": rows, "pagination": pg}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(a.cmd.OutOrStdout(), string(b))
		return nil
	}
	if len(rows) == 0 {
		fmt.Fprintf(a.cmd.OutOrStdout(), "%s: no records\n", def.Title)
		return nil
	}
	headers := make([]string, 0, len(def.Columns))
	for _, c := range def.Columns {
		headers = append(headers, c.Label)
	}
	tw := tablewriter.NewWriter(a.cmd.OutOrStdout())
	tw.SetHeader(headers)
	for _, row := range rows {
		vals := make([]string, 0, len(def.Columns))
		for _, c := range def.Columns {
			vals = append(vals, row[c.Key])
		}
		tw.Append(vals)
	}
	tw.Render()
	fmt.Fprintf(a.cmd.OutOrStdout(), "page %d of %d (%d records)\n",
		pg.CurrentPage, pg.TotalPages, pg.TotalItems)
	return nil
}
