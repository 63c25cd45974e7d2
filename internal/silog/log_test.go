package silog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/testing/stub"
)

func TestLogger_levels(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, &Options{Level: LevelDebug})

	log.Debug("debug message")
	log.Info("info message", "k", "v")
	log.Warnf("warn %d", 1)
	log.Errorf("error %q", "x")

	assert.Equal(t,
		"DBG debug message\n"+
			"INF info message  k=v\n"+
			"WRN warn 1\n"+
			"ERR error \"x\"\n",
		buf.String())
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, nil)
	assert.Equal(t, LevelInfo, log.Level())

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, log.Level())
	log.Debugf("shown %v", true)
	assert.Equal(t, "DBG shown true\n", buf.String())
}

func TestLogger_Fatal(t *testing.T) {
	type fatalExit struct{}

	var buf bytes.Buffer
	log := New(&buf, &Options{
		OnFatal: func() { panic(fatalExit{}) },
	})

	assert.PanicsWithValue(t, fatalExit{}, func() {
		log.Fatalf("textalign: %v", "boom")
	})
	assert.Equal(t, "FTL textalign: boom\n", buf.String())
}

func TestLogger_defaultFatalExits(t *testing.T) {
	var code int
	defer stub.Value(&_osExit, func(c int) {
		code = c
		panic("exited")
	})()

	log := Nop()
	assert.PanicsWithValue(t, "exited", func() {
		log.Fatal("bye")
	})
	assert.Equal(t, 1, code)
}

func TestLogger_nilSafe(t *testing.T) {
	var exited bool
	defer stub.Value(&_osExit, func(int) { exited = true })()

	var log *Logger
	log.Info("ignored")
	log.SetLevel(LevelDebug)
	assert.Equal(t, LevelFatal+1, log.Level())
	assert.False(t, exited)

	log.Fatalf("foo %s", "bar")
	assert.True(t, exited)
}

func TestNew_invalidLevel(t *testing.T) {
	require.Panics(t, func() {
		New(new(bytes.Buffer), &Options{Level: LevelFatal})
	})
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		give Level
		want string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LevelFatal, "fatal"},
		{LevelInfo + 1, "INFO+1"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.give.String())
		})
	}
}
