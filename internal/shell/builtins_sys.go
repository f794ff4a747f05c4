package shell

import "path/filepath"

func (b *builtins) showIP(args []string) (Result, error) {
	ip, err := b.sys.HostIP()
	if err != nil {
		return fail(newError(ResolutionError, err, "%v", err))
	}
	return ok(ip)
}

func (b *builtins) showCwd(args []string) (Result, error) {
	dir, err := b.sys.Getwd()
	if err != nil {
		return fail(newError(IOError, err, "failed to get working directory: %v", err))
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fail(newError(IOError, err, "%v", err))
	}
	return ok(abs)
}

// clearScreen produces no output block.
func (b *builtins) clearScreen(args []string) (Result, error) {
	if err := b.sys.Clear(); err != nil {
		return fail(newError(IOError, err, "%v", err))
	}
	return ok("")
}
