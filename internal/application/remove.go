package application

// DeleteResult is the outcome of one best-effort removal
type DeleteResult struct {
	Path    string
	Removed bool  // true when the file is gone (or would be, in a dry run)
	Bytes   int64 // size of the removed file, 0 when unknown
	Err     error // *DeleteError when the filesystem refused
}

// removeFile deletes path if it exists. It never panics or aborts the run;
// the caller decides how to account for the result.
func (v *Validator) removeFile(path string) DeleteResult {
	result := DeleteResult{Path: path}

	exists, err := v.store.Exists(path)
	if err != nil {
		result.Err = &DeleteError{Path: path, Err: err}
		return result
	}
	if !exists {
		return result
	}

	if size, err := v.store.Size(path); err == nil {
		result.Bytes = size
	}

	if v.dryRun {
		result.Removed = true
		return result
	}

	if err := v.store.Remove(path); err != nil {
		result.Bytes = 0
		result.Err = &DeleteError{Path: path, Err: err}
		return result
	}
	result.Removed = true
	return result
}
