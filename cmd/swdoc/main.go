/* Copyright 2023 The swtch Authors
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */


// Package main is a little command-line utility that renders a switch
// definition as HTML documentation or as an analysis report.
//
//	swdoc -s doors.yaml > doors.html
//	swdoc -s doors.yaml -analyze
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tablewalk/swtch/def"
	"github.com/tablewalk/swtch/tools"
)

func main() {
	var (
		defFilename = flag.String("s", "", "switch definition filename (YAML)")
		analyze     = flag.Bool("analyze", false, "emit an analysis (YAML) instead of HTML")
	)

	flag.Parse()

	if *defFilename == "" {
		log.Fatal("need a switch definition (-s)")
	}

	s, err := def.FromFile(*defFilename)
	if err != nil {
		log.Fatalf("couldn't read definition: %v", err)
	}

	if *analyze {
		a, err := tools.Analyze(s)
		if err != nil {
			log.Fatal(err)
		}
		yml, err := a.YAML()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(yml)
		return
	}

	if err := tools.RenderSwitchHTML(s, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
