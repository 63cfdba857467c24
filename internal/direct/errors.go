package direct

import "errors"

var (
	ErrCapacity     = errors.New("direct: not enough space to add the instruction")
	ErrEmptyCommand = errors.New("direct: attempt to send an empty command")
	ErrReplyError   = errors.New("direct: the command failed on the brick")
	ErrReplyLength  = errors.New("direct: reply length mismatch")
	ErrBadPort      = errors.New("direct: port mask does not name a single port")
)
