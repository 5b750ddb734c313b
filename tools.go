//go:build tools

package s3remote

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
