package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// stepKeys generates the RSA signing key pair under config/keys via
// openssl, capturing each command's stdout as the PEM file content.
// The existence check is on the directory, not the individual files:
// a config/keys left behind by a partial run is treated as done.
func stepKeys(ctx context.Context, sc *Context) error {
	if sc.SkipKeys {
		sc.Console.Warn("keys skipped")
		return nil
	}

	keyDir := sc.Path("config", "keys")
	if pathExists(keyDir) {
		sc.Console.Warn("keys already initialized")
		return nil
	}

	privRel := filepath.Join("config", "keys", "private.pem")
	pubRel := filepath.Join("config", "keys", "public.pem")

	priv, err := sc.Runner.Run(ctx, sc.Dir, sc.Config.OpensslBin, "genrsa", strconv.Itoa(sc.Config.KeyBits))
	if err != nil {
		return fmt.Errorf("failed to generate private key: %w", err)
	}
	if err := os.MkdirAll(keyDir, 0o700); err != nil {
		return fmt.Errorf("failed to create %s: %w", keyDir, err)
	}
	if err := os.WriteFile(sc.Path(privRel), priv, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", privRel, err)
	}
	sc.Console.Success("generated %s", privRel)

	pub, err := sc.Runner.Run(ctx, sc.Dir, sc.Config.OpensslBin, "rsa", "-in", privRel, "-pubout")
	if err != nil {
		return fmt.Errorf("failed to derive public key: %w", err)
	}
	if err := os.WriteFile(sc.Path(pubRel), pub, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", pubRel, err)
	}
	sc.Console.Success("generated %s", pubRel)

	return nil
}
