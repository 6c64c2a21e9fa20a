package replay

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nxadm/tail"
)

var ErrOpen = errors.New("failed to open script")

// Run reads the script at path and applies each command as it is read. With follow set the file
// is tailed like a log and Run only returns once ctx is done or a command fails, which allows
// appending to a script while watching the transcript.
func Run(ctx context.Context, path string, follow bool, runner *Runner) error {
	tailFile, errTail := tail.TailFile(path, tail.Config{
		Logger:    tail.DiscardingLogger,
		Follow:    follow,
		ReOpen:    follow,
		MustExist: true,
	})
	if errTail != nil {
		return errors.Join(errTail, ErrOpen)
	}

	defer func() {
		if errStop := tailFile.Stop(); errStop != nil {
			slog.Error("Failed to stop tailing script cleanly", slog.String("error", errStop.Error()))
		}
	}()

	lineNo := 0

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-tailFile.Lines:
			if !ok {
				return nil
			}

			if line == nil {
				continue
			}

			if line.Err != nil {
				return errors.Join(line.Err, ErrOpen)
			}

			lineNo++

			cmd, found, errParse := ParseLine(lineNo, line.Text)
			if errParse != nil {
				return errParse
			}

			if !found {
				continue
			}

			if errApply := runner.Apply(cmd); errApply != nil {
				return errApply
			}
		}
	}
}
