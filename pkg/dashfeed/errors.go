package dashfeed

import "errors"

// ErrWorkbookNotFound indicates the source workbook does not exist. It is
// checked before the file is opened so the message names the path, not an
// xlsx parse failure.
var ErrWorkbookNotFound = errors.New("workbook not found")
