package render

import "github.com/nbspawn/nbspawn/pkg/logd"

const (
	use = "render"

	requestFlagName = "request"
)

var log = logd.Get().WithName("render-command")
