package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// tracerKeys are the tracers used by gintsieve and its packages.
var tracerKeys = []string{"root", "gintsieve", "gintsieve.primefile", "gintsieve.cli"}

func init() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tracing.RegisterTraceAdapter("logrus", logrusadapter.GetAdapter(), false)
	tracing.RegisterTraceAdapter("zap", newZapTracer, false)
}

// setupTracing installs a trace2go root tracer configured by conf and makes
// it the global trace selector.
func setupTracing(conf schuko.Configuration) error {
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Debugf("tracing with adapter %q", conf.GetString("tracing.adapter"))
	return nil
}

// --- zap adapter -----------------------------------------------------------

// zapTracer implements tracing.Trace on top of a zap sugared logger.
// Filtering is done by trace level, the zap core itself passes everything.
type zapTracer struct {
	level tracing.TraceLevel
	out   io.Writer
	log   *zap.SugaredLogger
}

func newZapTracer() tracing.Trace {
	t := &zapTracer{
		level: tracing.LevelError,
		out:   os.Stderr,
	}
	t.log = zapLogger(t.out)
	return t
}

func zapLogger(w io.Writer) *zap.SugaredLogger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core).Sugar()
}

func (t *zapTracer) Errorf(s string, args ...interface{}) {
	t.log.Errorf(s, args...)
}

func (t *zapTracer) Infof(s string, args ...interface{}) {
	if t.level < tracing.LevelInfo {
		return
	}
	t.log.Infof(s, args...)
}

func (t *zapTracer) Debugf(s string, args ...interface{}) {
	if t.level < tracing.LevelDebug {
		return
	}
	t.log.Debugf(s, args...)
}

// P returns a tracer carrying key=val as a structured field. The result
// shares output and level of t at the time of the call.
func (t *zapTracer) P(key string, val interface{}) tracing.Trace {
	return &zapTracer{
		level: t.level,
		out:   t.out,
		log:   t.log.With(key, val),
	}
}

func (t *zapTracer) SetTraceLevel(l tracing.TraceLevel) { t.level = l }

func (t *zapTracer) GetTraceLevel() tracing.TraceLevel { return t.level }

func (t *zapTracer) SetOutput(w io.Writer) {
	t.out = w
	t.log = zapLogger(w)
}
