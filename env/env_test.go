package env

import (
	"path/filepath"
	"testing"

	"github.com/mazzegi/statx/testx"
)

func TestLoadPriority(t *testing.T) {
	tx := testx.NewTx(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "stop=30\nstart=5\n")

	src := Sources{
		Prefix:  "STATX_",
		Environ: []string{"STATX_STOP=40", "STATX_STEP=2", "STATX_JSON=", "HOME=/root"},
		Dir:     dir,
		Args:    []string{"-start", "1", "-lang=de", "7", "8"},
	}
	env, args := Load(src)

	tx.AssertEqual([]string{"7", "8"}, args)

	stop, err := env.IntOrDefault("stop", 10)
	tx.AssertNoErr(err)
	tx.AssertEqual(30, stop)

	start, err := env.IntOrDefault("start", 0)
	tx.AssertNoErr(err)
	tx.AssertEqual(1, start)

	step, err := env.IntOrDefault("step", 1)
	tx.AssertNoErr(err)
	tx.AssertEqual(2, step)

	places, err := env.IntOrDefault("places", 2)
	tx.AssertNoErr(err)
	tx.AssertEqual(2, places)

	js, err := env.BoolOrDefault("json", false)
	tx.AssertNoErr(err)
	tx.AssertEqual(true, js)
	tx.AssertEqual("de", env.StringOrDefault("lang", "en"))

	_, ok := env.String("home")
	tx.AssertEqual(false, ok)
}

func TestIntMalformed(t *testing.T) {
	tx := testx.NewTx(t)
	env := Env{"places": "two", "stop": int64(12)}

	_, err := env.IntOrDefault("places", 2)
	tx.AssertErr(err)

	stop, err := env.IntOrDefault("stop", 10)
	tx.AssertNoErr(err)
	tx.AssertEqual(12, stop)
}

func TestUnquote(t *testing.T) {
	tx := testx.NewTx(t)
	tx.AssertEqual("a b", unquote(`"a b"`))
	tx.AssertEqual("a b", unquote(`'a b'`))
	tx.AssertEqual(`"`, unquote(`"`))
	tx.AssertEqual("plain", unquote("plain"))
}

func TestLoadBoolFlags(t *testing.T) {
	tx := testx.NewTx(t)
	env, args := Load(Sources{
		Args:      []string{"-json", "5", "3", "-places", "1", "1"},
		BoolFlags: []string{"json"},
	})
	tx.AssertEqual([]string{"5", "3", "1"}, args)
	js, err := env.BoolOrDefault("json", false)
	tx.AssertNoErr(err)
	tx.AssertEqual(true, js)
}

func TestBoolMalformed(t *testing.T) {
	tx := testx.NewTx(t)
	env := Env{"json": "5", "verbose": "off"}

	_, err := env.BoolOrDefault("json", false)
	tx.AssertErr(err)

	verbose, err := env.BoolOrDefault("verbose", true)
	tx.AssertNoErr(err)
	tx.AssertEqual(false, verbose)

	missing, err := env.BoolOrDefault("missing", true)
	tx.AssertNoErr(err)
	tx.AssertEqual(true, missing)
}
