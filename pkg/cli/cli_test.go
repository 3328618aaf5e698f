package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/clusterlens/clusterlens/pkg/serializer"
)

func hasName(flag cli.Flag, name string) bool {
	if flag == nil {
		return false
	}
	for _, n := range flag.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func requireFlags(t *testing.T, cmd *cli.Command, names ...string) {
	t.Helper()
	for _, flagName := range names {
		found := false
		for _, f := range cmd.Flags {
			if hasName(f, flagName) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("required flag %q not found on %q", flagName, cmd.Name)
		}
	}
}

func TestAuditCmdDefinition(t *testing.T) {
	cmd := auditCmd()

	if cmd.Name != "audit" {
		t.Errorf("Name = %q, want audit", cmd.Name)
	}
	requireFlags(t, cmd, "namespace", "exclude-attr", "kubeconfig", "output", "format")
	if cmd.Action == nil {
		t.Error("Action should not be nil")
	}
}

func TestServeCmdDefinition(t *testing.T) {
	cmd := serveCmd()

	if cmd.Name != "serve" {
		t.Errorf("Name = %q, want serve", cmd.Name)
	}
	requireFlags(t, cmd, "port", "interval", "namespace", "kubeconfig")
	if cmd.Action == nil {
		t.Error("Action should not be nil")
	}
}

func TestPublishCmdDefinition(t *testing.T) {
	cmd := publishCmd()

	if cmd.Name != "publish" {
		t.Errorf("Name = %q, want publish", cmd.Name)
	}
	requireFlags(t, cmd, "report", "ref", "plain-http")
	if cmd.Action == nil {
		t.Error("Action should not be nil")
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		want      serializer.Format
		wantError bool
	}{
		{name: "json", format: "json", want: serializer.FormatJSON},
		{name: "yaml", format: "yaml", want: serializer.FormatYAML},
		{name: "table", format: "table", want: serializer.FormatTable},
		{name: "unknown", format: "xml", wantError: true},
		{name: "empty", format: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got serializer.Format
			var gotErr error

			testCmd := &cli.Command{
				Name: "test",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					got, gotErr = parseOutputFormat(cmd)
					return gotErr
				},
			}

			err := testCmd.Run(context.Background(), []string{"test", "--format", tt.format})

			if tt.wantError {
				if err == nil {
					t.Error("expected error but got nil")
				} else if !strings.Contains(err.Error(), "unknown output format") {
					t.Errorf("error = %v, want unknown output format", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("format = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPublishRejectsMissingReport(t *testing.T) {
	err := publishCmd().Run(context.Background(),
		[]string{"publish", "--report", "/nonexistent/report.json", "--ref", "localhost:5000/reports"})

	if err == nil {
		t.Fatal("expected error for missing report file")
	}
	if !strings.Contains(err.Error(), "failed to load report") {
		t.Errorf("error = %v, want failed to load report", err)
	}
}

func TestVersionCmdDefinition(t *testing.T) {
	cmd := versionCmd()

	if cmd.Name != "version" {
		t.Errorf("Name = %q, want version", cmd.Name)
	}
	requireFlags(t, cmd, "format")
	if cmd.Action == nil {
		t.Error("Action should not be nil")
	}
}

func TestCommandLister(_ *testing.T) {
	commandLister(context.Background(), nil)

	cmd := &cli.Command{Name: "test"}
	commandLister(context.Background(), cmd)

	rootCmd := &cli.Command{
		Name: "root",
		Commands: []*cli.Command{
			{Name: "visible1", Hidden: false},
			{Name: "hidden", Hidden: true},
			{Name: "visible2", Hidden: false},
		},
	}
	commandLister(context.Background(), rootCmd)
}
