package scaffold

import (
	"context"

	"github.com/authsmith/authsmith/pkg/types"
)

// stepManifest writes the default package.json for the new project.
func stepManifest(_ context.Context, sc *Context) error {
	return WriteJSONOnce(sc, "package.json", defaultManifest(sc))
}

func defaultManifest(sc *Context) *types.Manifest {
	return &types.Manifest{
		Name:        sc.Name(),
		Version:     "0.0.0",
		Description: "OpenID Connect provider deployment",
		Private:     true,
		Main:        "server.js",
		Scripts: map[string]string{
			"start": "node server.js",
		},
		Engines: map[string]string{
			"node": sc.Config.NodeEngine,
		},
		Dependencies: map[string]string{
			"authsmith-server": sc.Config.ServerPin,
		},
	}
}
