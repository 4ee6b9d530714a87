package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/clubpro-dev/qistadmin/internal/sandbox"
	sdk "github.com/clubpro-dev/qistadmin/sdk"
	"github.com/clubpro-dev/qistadmin/sdk/client"
)

// newCLIRoot builds a fresh command tree with the same wiring as main so
// tests never share flag state.
func newCLIRoot() *cobra.Command {
	root := &cobra.Command{Use: "qistctl", SilenceUsage: true}
	root.PersistentFlags().String("api-url", "", "")
	root.PersistentFlags().String("token", "", "")
	root.PersistentFlags().String("profile", "", "")
	root.PersistentFlags().String("output", "table", "")
	root.PersistentFlags().String("screens", "", "")
	root.PersistentFlags().Bool("yes", false, "")
	root.PersistentFlags().Bool("verbose", false, "")
	root.AddCommand(newProfileCmd())
	root.AddCommand(newDealersCmd())
	for _, cmd := range newResourceCmds() {
		root.AddCommand(cmd)
	}
	return root
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newCLIRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// startSandbox boots the demo backend and returns an authenticated client
// plus the token the CLI invocations should carry.
func startSandbox(t *testing.T) (*httptest.Server, *client.Client, string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	srv := httptest.NewServer(sandbox.New("test-secret").Handler())
	t.Cleanup(srv.Close)
	res, err := client.New(srv.URL).Login(context.Background(), sandbox.DemoEmail, sandbox.DemoPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return srv, client.New(srv.URL, client.WithToken(res.Token)), res.Token
}

func writeTestPNG(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "avatar.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create png: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return path
}

func TestUpdateKeepsFieldsNotSet(t *testing.T) {
	srv, cli, tok := startSandbox(t)
	ctx := context.Background()

	p, err := cli.CreatePage(ctx, client.PageInput{
		Title: "About", Slug: "about", Body: "<p>hello</p>", IsActive: true,
	})
	if err != nil {
		t.Fatalf("create page: %v", err)
	}

	out, err := runCLI(t, "pages", "update", p.ID, "--set", "title=About Us",
		"--api-url", srv.URL, "--token", tok)
	if err != nil {
		t.Fatalf("update: %v\n%s", err, out)
	}

	got, err := cli.GetPage(ctx, p.ID)
	if err != nil {
		t.Fatalf("reload page: %v", err)
	}
	if got.Title != "About Us" {
		t.Fatalf("title not updated: %q", got.Title)
	}
	if got.Body != "<p>hello</p>" {
		t.Fatalf("body clobbered: %q", got.Body)
	}
	if got.Slug != "about" || !got.IsActive {
		t.Fatalf("unset fields lost: slug=%q active=%v", got.Slug, got.IsActive)
	}
}

func TestProfileUpdateCommandSendsPicture(t *testing.T) {
	srv, cli, tok := startSandbox(t)
	ctx := context.Background()

	out, err := runCLI(t, "profile", "update",
		"--full-name", "New Name", "--picture", writeTestPNG(t),
		"--api-url", srv.URL, "--token", tok)
	if err != nil {
		t.Fatalf("profile update: %v\n%s", err, out)
	}

	p, err := cli.Profile(ctx)
	if err != nil {
		t.Fatalf("reload profile: %v", err)
	}
	if p.FullName != "New Name" {
		t.Fatalf("full name not updated: %q", p.FullName)
	}
	if p.ProfilePicture != "/uploads/avatar.jpg" {
		t.Fatalf("picture not stored: %q", p.ProfilePicture)
	}
}

func TestDealerApproveCommand(t *testing.T) {
	srv, cli, tok := startSandbox(t)
	ctx := context.Background()

	page, err := cli.ListDealers(ctx, sdk.ListQuery{Page: 1, Limit: 100})
	if err != nil || len(page.Data) == 0 {
		t.Fatalf("list dealers: %v (%d rows)", err, len(page.Data))
	}
	d := page.Data[0]

	out, err := runCLI(t, "dealers", "approve", d.ID,
		"--api-url", srv.URL, "--token", tok)
	if err != nil {
		t.Fatalf("approve: %v\n%s", err, out)
	}
	got, err := cli.GetDealer(ctx, d.ID)
	if err != nil {
		t.Fatalf("reload dealer: %v", err)
	}
	if !got.IsApproved {
		t.Fatalf("dealer %s still unapproved", d.ID)
	}
	if !strings.Contains(out, "approved") {
		t.Fatalf("missing success toast: %q", out)
	}
}

func TestAppLoggerRespectsVerbose(t *testing.T) {
	quiet := newCLIRoot()
	if appLogger(quiet).Desugar().Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("logger should be silent without --verbose")
	}

	verbose := newCLIRoot()
	if err := verbose.PersistentFlags().Set("verbose", "true"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if !appLogger(verbose).Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("--verbose should enable debug logging")
	}
}
