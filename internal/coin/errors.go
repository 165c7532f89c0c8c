package coin

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCoin is returned when no profile matches a coin name
	// and network combination.
	ErrUnknownCoin = errors.New("unknown coin and network combination")

	// ErrUnrecognizedVersionBytes is returned when extended-key version
	// bytes match no registered profile.
	ErrUnrecognizedVersionBytes = errors.New("version bytes unrecognised")

	// ErrInvalidDaemonURL is returned for daemon URLs that do not match
	// the user:pass@host[:port] shape.
	ErrInvalidDaemonURL = errors.New("invalid daemon URL")

	// ErrInvalidAddress is returned for addresses that fail base58-check
	// decoding or carry a version byte unknown to the profile.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrTruncatedHeader is returned when a raw block is too short to
	// contain its full header. Callers should treat it as a block that
	// has not been fully received yet.
	ErrTruncatedHeader = errors.New("truncated block header")

	// ErrDuplicateProfile is returned when two profiles share a coin
	// name and network.
	ErrDuplicateProfile = errors.New("duplicate coin profile")
)

// IncompleteProfileError reports a profile that matched a lookup but is
// missing mandatory sync-estimation attributes.
type IncompleteProfileError struct {
	Name    string
	Network string
	Missing []string
}

func (e *IncompleteProfileError) Error() string {
	return fmt.Sprintf("coin %s/%s missing %s attributes",
		e.Name, e.Network, strings.Join(e.Missing, ", "))
}

// GenesisMismatchError reports a genesis block whose header hash does
// not match the profile. It means the wrong profile was selected for
// the connected daemon's chain.
type GenesisMismatchError struct {
	Found    string
	Expected string
}

func (e *GenesisMismatchError) Error() string {
	return fmt.Sprintf("genesis block has hash %s expected %s", e.Found, e.Expected)
}
