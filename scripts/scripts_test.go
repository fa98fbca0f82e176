package scripts

import (
	"strings"
	"testing"

	"github.com/reusee/bff/bffvm"
	"github.com/reusee/bff/configs"
	"github.com/reusee/bff/logs"
	"github.com/reusee/bff/modes"
	"github.com/reusee/dscope"
	"go.starlark.net/starlark"
)

func asInt(t *testing.T, v starlark.Value) int {
	t.Helper()
	i, err := starlark.AsInt32(v)
	if err != nil {
		t.Fatal(err)
	}
	return i
}

func testSettings(limit int) configs.Settings {
	settings := configs.DefaultSettings()
	settings.Limit = limit
	return settings
}

func TestExecRun(t *testing.T) {
	globals, err := Exec("test.star", []byte(`
tape = "<" + op("PLUS") * 5 + "\x00"
result = run(tape)
limited = run(programs["count_down"], limit=100)
`), testSettings(bffvm.DefaultLimit), nil)
	if err != nil {
		t.Fatal(err)
	}

	result, ok := globals["result"].(starlark.Bytes)
	if !ok {
		t.Fatalf("got %v", globals["result"])
	}
	if string(result) != "<+++++\x05" {
		t.Fatalf("got %q", result)
	}

	limited := globals["limited"].(starlark.Bytes)
	if string(limited) != "<[-]\xce" {
		t.Fatalf("got %q", limited)
	}
}

func TestExecTrace(t *testing.T) {
	globals, err := Exec("test.star", []byte(`
events = trace("<[+]\x00")
ops = [e["op"] for e in events]
jump = events[1]["jump"]
noops = [e["pc"] for e in events if e["noop"]]
`), testSettings(bffvm.DefaultLimit), nil)
	if err != nil {
		t.Fatal(err)
	}
	ops := globals["ops"].(*starlark.List)
	if ops.Len() != 3 {
		t.Fatalf("got %v", ops)
	}
	if ops.Index(1) != starlark.String("LOOP_START") {
		t.Fatalf("got %v", ops)
	}
	if asInt(t, globals["jump"]) != 3 {
		t.Fatalf("got %v", globals["jump"])
	}
	noops := globals["noops"].(*starlark.List)
	if noops.Len() != 1 || asInt(t, noops.Index(0)) != 4 {
		t.Fatalf("got %v", noops)
	}
}

func TestExecDefaultLimit(t *testing.T) {
	globals, err := Exec("test.star", []byte(`
n = len(trace(programs["oscillate"]))
`), testSettings(50), nil)
	if err != nil {
		t.Fatal(err)
	}
	if asInt(t, globals["n"]) != 50 {
		t.Fatalf("got %v", globals["n"])
	}
}

func TestExecPrint(t *testing.T) {
	var lines []string
	_, err := Exec("test.star", []byte(`
for name in sorted(programs.keys()):
    print(name)
print(op("nope") == "")
`), testSettings(bffvm.DefaultLimit), func(s string) {
		lines = append(lines, s)
	})
	if err != nil {
		t.Fatal(err)
	}
	if lines[0] != "add_five" {
		t.Fatalf("got %v", lines)
	}
	if lines[len(lines)-1] != "True" {
		t.Fatalf("got %v", lines)
	}
}

func TestExecError(t *testing.T) {
	_, err := Exec("bad.star", []byte(`run(42)`), testSettings(bffvm.DefaultLimit), nil)
	if err == nil {
		t.Fatal("should error")
	}
	if !strings.Contains(err.Error(), "tape must be bytes or string") {
		t.Fatalf("got %v", err)
	}
}

func TestExecStepBound(t *testing.T) {
	settings := testSettings(bffvm.DefaultLimit)
	settings.ScriptSteps = 10000
	_, err := Exec("loop.star", []byte(`
while True:
    pass
`), settings, nil)
	if err == nil {
		t.Fatal("should error")
	}
	if !strings.Contains(err.Error(), "too many steps") {
		t.Fatalf("got %v", err)
	}
}

func TestVMGlobals(t *testing.T) {
	vm := bffvm.NewVM([]byte("<+++++\x00"), bffvm.DefaultLimit)
	predeclared := Predeclared(bffvm.DefaultLimit)
	for name, value := range VMGlobals(vm) {
		predeclared[name] = value
	}
	thread := &starlark.Thread{Name: "test"}
	globals, err := starlark.ExecFileOptions(fileOptions, thread, "test.star", `
s1 = step()
s2 = step(3)
final = step(100)
now = state()
`, predeclared)
	if err != nil {
		t.Fatal(err)
	}
	pc, _, _ := globals["s1"].(*starlark.Dict).Get(starlark.String("pc"))
	if asInt(t, pc) != 1 {
		t.Fatalf("got %v", pc)
	}
	steps, _, _ := globals["s2"].(*starlark.Dict).Get(starlark.String("steps"))
	if asInt(t, steps) != 4 {
		t.Fatalf("got %v", steps)
	}
	halt, _, _ := globals["now"].(*starlark.Dict).Get(starlark.String("halt"))
	if halt != starlark.String("end") {
		t.Fatalf("got %v", halt)
	}
	if string(vm.Tape) != "<+++++\x05" {
		t.Fatalf("got %q", vm.Tape)
	}
}

func TestTapProvided(t *testing.T) {
	dscope.New(
		new(Module),
		new(logs.Module),
		new(configs.Module),
		modes.ForTest(t),
	).Call(func(
		tap Tap,
	) {
		if tap == nil {
			t.Fatal()
		}
	})
}
