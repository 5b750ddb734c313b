package protocol

import "strings"

// Command is one request read from git on the helper's stdin.
// It is always one of Capabilities, List, Push, Fetch, Unknown or End.
type Command interface {
	isCommand()
}

// Capabilities asks which features the helper supports.
type Capabilities struct{}

// List asks for the remote refs. ForPush is set for `list for-push`.
type List struct {
	ForPush bool
}

// Push asks to update Dst on the remote from the local ref Src.
// An empty Src requests deletion of Dst.
type Push struct {
	Src   string
	Dst   string
	Force bool
}

// Fetch asks for the objects of Revision, advertised as Ref by a previous list.
type Fetch struct {
	Revision string
	Ref      string
}

// Unknown is any line the helper does not understand.
type Unknown struct {
	Line string
}

// End is the blank line that terminates a batch, or the session when idle.
type End struct{}

func (Capabilities) isCommand() {}
func (List) isCommand()         {}
func (Push) isCommand()         {}
func (Fetch) isCommand()        {}
func (Unknown) isCommand()      {}
func (End) isCommand()          {}

// ParseCommand parses one line without its trailing newline.
// Known commands with missing or invalid arguments return an error wrapping
// ErrMalformedCommand or ErrInvalidRefSpec; anything unrecognised is Unknown.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return End{}, nil
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Unknown{Line: line}, nil
	}

	switch fields[0] {
	case "capabilities":
		if len(fields) != 1 {
			return Unknown{Line: line}, nil
		}
		return Capabilities{}, nil
	case "list":
		switch {
		case len(fields) == 1:
			return List{}, nil
		case len(fields) == 2 && fields[1] == "for-push":
			return List{ForPush: true}, nil
		}
		return Unknown{Line: line}, nil
	case "push":
		if len(fields) != 2 {
			return nil, newMalformedCommandError(line, ErrMalformedCommand)
		}
		push, err := ParseRefSpec(fields[1])
		if err != nil {
			return nil, newMalformedCommandError(line, err)
		}
		return push, nil
	case "fetch":
		if len(fields) != 3 {
			return nil, newMalformedCommandError(line, ErrMalformedCommand)
		}
		return Fetch{Revision: fields[1], Ref: fields[2]}, nil
	}

	return Unknown{Line: line}, nil
}

// ParseRefSpec parses a push refspec of the form [+]<src>:<dst>.
func ParseRefSpec(spec string) (Push, error) {
	var push Push
	spec, push.Force = strings.CutPrefix(spec, "+")

	src, dst, ok := strings.Cut(spec, ":")
	if !ok || dst == "" || strings.Contains(dst, ":") {
		return Push{}, ErrInvalidRefSpec
	}

	push.Src = src
	push.Dst = dst
	return push, nil
}

// RefSpecDst returns the destination of a refspec on a best-effort basis,
// for reporting errors about refspecs that failed to parse.
func RefSpecDst(spec string) string {
	if idx := strings.LastIndexByte(spec, ':'); idx >= 0 {
		return spec[idx+1:]
	}
	return strings.TrimPrefix(spec, "+")
}
