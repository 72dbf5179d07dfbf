package reflector

import "github.com/nbspawn/nbspawn/pkg/logd"

var log = logd.Get().WithName("spawner-reflector")
