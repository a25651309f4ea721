// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package qcl

import "log/slog"

// configs is used to store the values of different parameters of a Calculus
type configs struct {
	maxdepth int          // maximal depth of the trees we accept to translate
	logger   *slog.Logger // destination of diagnostic messages
}

func makeconfigs() *configs {
	return &configs{
		maxdepth: _DEFAULTMAXDEPTH,
		logger:   slog.New(slog.DiscardHandler),
	}
}

// Maxdepth is a configuration option (function). Used as a parameter in New it
// sets a limit on the depth of the fault trees that can be translated into
// proofs. Translation is recursive and this guards against stack exhaustion on
// adversarially deep inputs. The default value is 10 000. A value of zero, or
// less, means that there is no limit.
func Maxdepth(depth int) func(*configs) {
	return func(c *configs) {
		c.maxdepth = depth
	}
}

// Logger is a configuration option (function). Used as a parameter in New it
// sets the logger used to report failed derivations and translation steps. By
// default nothing is logged.
func Logger(l *slog.Logger) func(*configs) {
	return func(c *configs) {
		if l != nil {
			c.logger = l
		}
	}
}
