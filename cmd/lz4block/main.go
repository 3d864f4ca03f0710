// Command lz4block decodes an LZ4 block from a file (or stdin) and
// writes the reconstructed bytes to a file (or stdout). It exists to
// demonstrate the decoder end-to-end; it is not a general-purpose LZ4
// CLI and has no compression mode.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bitforge-dev/lz4block"
	"github.com/bitforge-dev/lz4block/internal/cpufeatures"
)

// CLI mirrors the struct-tag flag style this module's ambient stack was
// grounded on (dselans-mmmbop/config/config.go): one struct, one
// kong.Parse call, env-var fallbacks for every flag.
type CLI struct {
	In       string `kong:"help='Input file, or \"-\" for stdin',default='-',short='i'"`
	Out      string `kong:"help='Output file, or \"-\" for stdout',default='-',short='o'"`
	Size     int    `kong:"help='Expected decompressed size in bytes; 0 means the input has a 4-byte size prefix',short='s'"`
	DictFile string `kong:"help='Optional external dictionary file',short='d'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
}

func main() {
	_ = godotenv.Load() // optional: LZ4BLOCK_<FLAG> defaults, e.g. LZ4BLOCK_DEBUG

	var cli CLI
	kong.Parse(&cli,
		kong.Name("lz4block"),
		kong.Description("Decode a single LZ4 block"),
		kong.UsageOnError(),
		kong.DefaultEnvars("LZ4BLOCK"),
	)

	if cli.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.WithField("cpu_features", cpufeatures.Detect().String()).Debug("decoder starting")

	if err := run(cli); err != nil {
		logrus.Errorf("%+v", err)
		os.Exit(1)
	}
}

func run(cli CLI) error {
	input, err := readAll(cli.In)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}

	var dict []byte
	if cli.DictFile != "" {
		dict, err = os.ReadFile(cli.DictFile)
		if err != nil {
			return errors.Wrap(err, "reading dictionary")
		}
	}

	var out []byte
	if cli.Size > 0 {
		out, err = lz4block.DecompressWithDict(input, cli.Size, dict)
	} else if len(dict) > 0 {
		out, err = lz4block.DecompressSizePrependedWithDict(input, dict)
	} else {
		out, err = lz4block.DecompressSizePrepended(input)
	}
	if err != nil {
		return errors.Wrap(err, "decoding block")
	}

	logrus.WithField("bytes", len(out)).Info("decoded")
	return writeAll(cli.Out, out)
}

func readAll(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeAll(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
