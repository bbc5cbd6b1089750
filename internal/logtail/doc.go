// Package logtail reads the end of the pokedex log file for the UI log pane.
//
// # Reading Log Files
//
// Read and Tail keep only the last maxLines lines in a ring buffer:
//
//   - one sequential pass over the file
//   - O(maxLines) memory regardless of file size
//   - lines returned in chronological order
//   - a missing file yields no lines and no error
//
// Example usage:
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//	if err != nil {
//		slog.Warn("read log", "error", err)
//	}
//	problems := logtail.AtLeast(lines, slog.LevelWarn)
//
// # Level Filtering
//
// AtLeast understands the key=value output of slog.NewTextHandler and keeps
// lines whose level= attribute is at or above the given level. The log pane
// uses it to surface failed detail fetches, which are otherwise silent.
package logtail
