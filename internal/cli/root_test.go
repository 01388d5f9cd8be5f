package cli

import "testing"

func TestRootCommandWiresPlaySubcommand(t *testing.T) {
	root := newRootCmd()

	play, _, err := root.Find([]string{"play"})
	if err != nil {
		t.Fatalf("play subcommand not found: %v", err)
	}
	if play.Name() != "play" {
		t.Fatalf("unexpected subcommand %q", play.Name())
	}

	for _, flag := range []string{"amount", "difficulty", "category"} {
		if play.Flags().Lookup(flag) == nil {
			t.Fatalf("play command missing --%s flag", flag)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Fatalf("root command missing --config flag")
	}
}
