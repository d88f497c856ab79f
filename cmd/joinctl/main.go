// Copyright (C) 2024 joinengine contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Command joinctl evaluates a single expression, read from a file or
// stdin, against a pipeline described by a YAML config file.
package main

import (
	"flag"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/bossql/joinengine/engine"
	"github.com/bossql/joinengine/expr"
	"github.com/bossql/joinengine/join"
	"github.com/bossql/joinengine/pipeline"
)

var (
	dashconf  string
	dashquery string
)

func main() {
	flag.StringVar(&dashconf, "conf", "", "pipeline config (YAML); empty runs a single join engine with its default algorithm")
	flag.StringVar(&dashquery, "query", "", "file containing the expression to evaluate (default stdin)")
	flag.Parse()

	text, err := readInput(dashquery)
	if err != nil {
		exit(err)
	}
	n, err := expr.Parse(string(text))
	if err != nil {
		exit(err)
	}

	engines, err := loadPipeline(dashconf)
	if err != nil {
		exit(err)
	}

	out := pipeline.EvaluateInEngines(engines, n)
	fmt.Println(expr.ToString(out))
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return readAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func readAll(f *os.File) ([]byte, error) {
	var buf []byte
	chunk := make([]byte, 4096)
	for {
		n, err := f.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if err != nil {
			break
		}
	}
	return buf, nil
}

// pipelineConfig is the YAML shape loaded from -conf: an ordered list
// of engine names. "join" is the only built-in engine name today; a
// host embedding this CLI into a larger pipeline can extend this list
// in its own fork.
type pipelineConfig struct {
	Engines   []string `json:"engines"`
	Algorithm string   `json:"algorithm"`
}

func loadPipeline(path string) ([]pipeline.Engine, error) {
	if path == "" {
		return []pipeline.Engine{engine.New(join.HashJoinAlgorithm)}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg pipelineConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("joinctl: parsing %s: %w", path, err)
	}
	var engines []pipeline.Engine
	for _, name := range cfg.Engines {
		switch name {
		case "join":
			engines = append(engines, engine.New(join.Algorithm(cfg.Algorithm)))
		default:
			return nil, fmt.Errorf("joinctl: unknown pipeline engine %q", name)
		}
	}
	return engines, nil
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
