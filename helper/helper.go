// Package helper drives the git remote helper protocol on top of an
// s3remote.Client.
//
// Git writes one command per line on the helper's stdin. Push and fetch
// commands arrive in batches terminated by a blank line; every other command
// is answered on its own. A blank line while no batch is open ends the
// session.
package helper

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"

	"github.com/grafana/s3remote"
	"github.com/grafana/s3remote/log"
	"github.com/grafana/s3remote/protocol"
)

// maxLineSize bounds a single protocol line.
const maxLineSize = 1 << 20

// Helper answers remote helper commands.
type Helper struct {
	client s3remote.Client
	logger log.Logger
}

// Option configures a Helper.
type Option func(*Helper)

// WithLogger sets the logger used when the context carries none.
func WithLogger(logger log.Logger) Option {
	return func(h *Helper) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// New returns a Helper that serves commands with client.
func New(client s3remote.Client, options ...Option) *Helper {
	h := &Helper{
		client: client,
		logger: log.Noop(),
	}
	for _, option := range options {
		option(h)
	}

	return h
}

// session holds the streams of one Run invocation.
type session struct {
	*Helper
	ctx    context.Context
	logger log.Logger
	lines  *bufio.Scanner
	out    *protocol.Writer
}

// Run serves commands read from in until the session ends.
//
// It returns nil when git closes the session, either with a blank line or by
// closing in, and when git stops reading out (broken pipe).
func (h *Helper) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	lines := bufio.NewScanner(in)
	lines.Buffer(make([]byte, 0, 4096), maxLineSize)

	s := &session{
		Helper: h,
		ctx:    ctx,
		logger: log.FromContextOr(ctx, h.logger),
		lines:  lines,
		out:    protocol.NewWriter(out),
	}

	err := s.loop()
	if IsBrokenPipe(err) {
		s.logger.Debug("git closed the output stream", "error", err)
		return nil
	}

	return err
}

// IsBrokenPipe reports whether err was caused by writing to a closed pipe.
func IsBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}

// next returns the next line. ok is false once in is exhausted.
func (s *session) next() (line string, ok bool, err error) {
	if !s.lines.Scan() {
		if err := s.lines.Err(); err != nil {
			return "", false, fmt.Errorf("read command: %w", err)
		}
		return "", false, nil
	}

	return s.lines.Text(), true, nil
}

func (s *session) loop() error {
	for {
		if err := s.ctx.Err(); err != nil {
			return err
		}

		line, ok, err := s.next()
		if err != nil || !ok {
			return err
		}
		s.logger.Debug("command", "line", line)

		cmd, err := protocol.ParseCommand(line)
		if err != nil {
			if errors.Is(err, protocol.ErrInvalidRefSpec) {
				// An invalid refspec still opens a push batch so that git
				// gets a status line for it.
				if err := s.pushBatch(line); err != nil {
					return err
				}
				continue
			}

			s.logger.Warn("malformed command", "line", line, "error", err)
			if err := s.respond(s.out.Unknown); err != nil {
				return err
			}
			continue
		}

		switch cmd := cmd.(type) {
		case protocol.End:
			return nil
		case protocol.Capabilities:
			err = s.respond(func() error {
				return s.out.Capabilities(protocol.CapabilityPush, protocol.CapabilityFetch)
			})
		case protocol.List:
			err = s.list(cmd)
		case protocol.Push:
			err = s.pushBatch(line)
		case protocol.Fetch:
			err = s.fetchBatch(cmd)
		case protocol.Unknown:
			s.logger.Info("unknown command", "line", cmd.Line)
			err = s.respond(s.out.Unknown)
		default:
			err = fmt.Errorf("unhandled command %T", cmd)
		}
		if err != nil {
			return err
		}
	}
}

// respond writes a response followed by the terminating blank line.
func (s *session) respond(write func() error) error {
	if err := write(); err != nil {
		return err
	}
	if err := s.out.End(); err != nil {
		return err
	}

	return s.out.Flush()
}

func (s *session) list(cmd protocol.List) error {
	dir, err := s.client.ListRefs(s.ctx)
	if err != nil {
		return fmt.Errorf("list refs: %w", err)
	}
	s.logger.Debug("listed refs", "refs", dir.Len(), "for_push", cmd.ForPush)

	return s.respond(func() error {
		for _, name := range dir.Names() {
			latest, _ := dir.Latest(name)
			if err := s.out.Ref(latest.Revision, name); err != nil {
				return err
			}
			for stale := range dir.Stale(name) {
				if err := s.out.Ref(stale.Revision, s3remote.StaleRefName(name, stale.Revision)); err != nil {
					return err
				}
			}
		}

		if head, ok := dir.Head(); ok {
			return s.out.SymRef(head, protocol.HEAD.FullName)
		}
		return nil
	})
}

// pushBatch collects push lines starting with first until the blank line
// that closes the batch, then pushes each ref in order.
func (s *session) pushBatch(first string) error {
	batch := []string{first}
	for {
		line, ok, err := s.next()
		if err != nil {
			return err
		}
		if !ok || line == "" {
			break
		}
		batch = append(batch, line)
	}

	return s.respond(func() error {
		for _, line := range batch {
			if err := s.push(line); err != nil {
				return err
			}
		}
		return nil
	})
}

// push handles one line of a push batch. Failures of the ref update are
// reported to git; only output and cancellation errors are returned.
func (s *session) push(line string) error {
	cmd, err := protocol.ParseCommand(line)
	if err != nil {
		s.logger.Warn("malformed push", "line", line, "error", err)
		reason := protocol.ErrMalformedCommand.Error()
		if errors.Is(err, protocol.ErrInvalidRefSpec) {
			reason = err.Error()
		}
		return s.out.Error(batchDst(line), reason)
	}

	push, ok := cmd.(protocol.Push)
	if !ok {
		s.logger.Warn("unexpected command in push batch", "line", line)
		return s.out.Error(batchDst(line), protocol.ErrMalformedCommand.Error())
	}

	result, err := s.client.Push(s.ctx, s3remote.PushRequest{
		Src:   push.Src,
		Dst:   push.Dst,
		Force: push.Force,
	})
	switch {
	case err != nil:
		if ctxErr := s.ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		s.logger.Error("push failed", "ref", push.Dst, "error", err)
		return s.out.Error(push.Dst, err.Error())
	case result.Rejected:
		s.logger.Info("push rejected", "ref", push.Dst, "revision", result.Revision)
		return s.out.Error(push.Dst, result.Reason)
	}

	s.logger.Info("pushed", "ref", push.Dst, "revision", result.Revision, "up_to_date", result.UpToDate)
	return s.out.OK(push.Dst)
}

// fetchBatch fetches first and every following ref until the blank line
// that closes the batch. Lines that are not valid fetch commands are logged
// and skipped. A failed fetch aborts the session.
func (s *session) fetchBatch(first protocol.Fetch) error {
	if err := s.fetch(first); err != nil {
		return err
	}

	for {
		line, ok, err := s.next()
		if err != nil {
			return err
		}
		if !ok || line == "" {
			break
		}

		cmd, err := protocol.ParseCommand(line)
		if err != nil {
			s.logger.Warn("malformed fetch", "line", line, "error", err)
			continue
		}
		fetch, isFetch := cmd.(protocol.Fetch)
		if !isFetch {
			s.logger.Warn("unexpected command in fetch batch", "line", line)
			continue
		}
		if err := s.fetch(fetch); err != nil {
			return err
		}
	}

	return s.respond(func() error { return nil })
}

// batchDst returns the ref a status line about a bad push line refers to.
func batchDst(line string) string {
	fields := strings.Fields(line)
	switch len(fields) {
	case 0:
		return "-"
	case 1:
		return fields[0]
	}

	return protocol.RefSpecDst(fields[1])
}

func (s *session) fetch(cmd protocol.Fetch) error {
	if err := s.client.Fetch(s.ctx, cmd.Revision, cmd.Ref); err != nil {
		return fmt.Errorf("fetch %s at %s: %w", cmd.Ref, cmd.Revision, err)
	}
	s.logger.Info("fetched", "ref", cmd.Ref, "revision", cmd.Revision)

	return nil
}
