package render

import "context"

// WatchResize is a no-op, the console size is read once at Init.
func (r *DefaultRenderer) WatchResize(ctx context.Context) {}
