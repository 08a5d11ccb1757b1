package scaffold

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	oerrors "github.com/opmodel/cptgen/internal/errors"
)

// CanonicalizePath normalizes separators to forward slashes and resolves
// "." and ".." segments lexically. The filesystem is not consulted, so the
// path does not need to exist.
func CanonicalizePath(p string) string {
	return path.Clean(strings.ReplaceAll(p, `\`, "/"))
}

// CheckTargetDirectory fails with an invalid slug error unless target is a
// direct child of root once both are canonicalized.
func CheckTargetDirectory(kind Kind, root, target string) error {
	canonicalRoot := CanonicalizePath(root)
	canonicalTarget := CanonicalizePath(target)

	if path.Dir(canonicalTarget) == canonicalRoot && canonicalTarget != canonicalRoot {
		return nil
	}

	return oerrors.NewInvalidSlugError(
		fmt.Sprintf("Invalid %s slug specified. The target directory '%s' is not in '%s'.",
			kind, target, canonicalRoot),
		target,
	)
}

// ResolveTarget computes and checks the plugin directory. With dir set the
// base must already exist; otherwise the plugins root is used and created
// when missing.
func ResolveTarget(sink Sink, pluginsRoot, slug, dir string) (string, error) {
	base := pluginsRoot
	if dir != "" {
		ok, err := sink.IsDir(dir)
		if err != nil {
			return "", fmt.Errorf("checking directory %s: %w", dir, err)
		}
		if !ok {
			return "", oerrors.NewNotFoundError(
				"Cannot create plugin in directory that doesn't exist.",
				dir,
				"Create the directory first or omit --dir.",
			)
		}
		base = dir
	} else if err := sink.MkdirAll(pluginsRoot); err != nil {
		return "", fmt.Errorf("creating plugins directory %s: %w", pluginsRoot, err)
	}

	// Joined by hand so dot segments in the slug survive until the check.
	target := strings.TrimRight(filepath.ToSlash(base), "/") + "/" + slug
	if err := CheckTargetDirectory(KindPlugin, base, target); err != nil {
		return "", err
	}

	return filepath.FromSlash(CanonicalizePath(target)), nil
}
