// Package retry retries artifact writes that fail for transient reasons,
// such as an interrupted system call or a file briefly locked by another
// process, with exponential backoff.
//
// # Example Usage
//
//	executor := retry.NewExecutor(retry.NewFileSystemErrorClassifier(), retry.NewExponentialBackoff(3))
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return fs.WriteFile(path, data)
//	})
//
// Missing directories, permission problems and a full disk are fatal and
// returned after the first attempt.
package retry
