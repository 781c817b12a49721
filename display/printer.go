// =================================================================================
//
//			wwise-ids - https://www.foxhollow.cc/projects/wwise-ids/
//
//		 wwise-ids is a simple CLI utility for turning the sound bank header
//	  generated by Wwise into Go constants and keeping them honest
//
//		 Copyright (c) 2024 Steve Cross <flip@foxhollow.cc>
//
//			Licensed under the Apache License, Version 2.0 (the "License");
//			you may not use this file except in compliance with the License.
//			You may obtain a copy of the License at
//
//			     http://www.apache.org/licenses/LICENSE-2.0
//
//			Unless required by applicable law or agreed to in writing, software
//			distributed under the License is distributed on an "AS IS" BASIS,
//			WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//			See the License for the specific language governing permissions and
//			limitations under the License.
//
// =================================================================================
package display

import (
	"encoding/json"
	"fmt"
	"io"

	"wwise-ids/engine"
	"wwise-ids/integrity"
	"wwise-ids/model"

	"gopkg.in/yaml.v2"
)

const textNameWidth = 40

// Printer renders command results as plain text, JSON lines or YAML
// documents.
type Printer struct {
	output     io.Writer
	outputType model.OutputType
}

func NewPrinter(output io.Writer, outputType model.OutputType) *Printer {
	return &Printer{
		output:     output,
		outputType: outputType,
	}
}

func (p *Printer) PrintTable(source string, table *model.Table) error {
	if p.outputType != model.OutputText {
		sections := table.Sections
		if sections == nil {
			sections = make([]model.Section, 0)
		}

		return p.print(&JsonTable{
			MessageType: "table",
			Source:      source,
			Count:       table.Count(),
			Sections:    sections,
		})
	}

	if table.Count() == 0 {
		fmt.Fprintf(p.output, "%s: no identifiers\n", source)
		return nil
	}

	for _, section := range table.Sections {
		fmt.Fprintln(p.output, section.Category.String())

		for _, entry := range section.Entries {
			fmt.Fprintf(p.output, "  %-*s %10d\n", textNameWidth, entry.Name, entry.ID)
		}

		for _, group := range section.Groups {
			fmt.Fprintf(p.output, "  %-*s %10d\n", textNameWidth, group.Name, group.ID)

			for _, value := range group.Values {
				fmt.Fprintf(p.output, "    %-*s %10d\n", textNameWidth-2, value.Name, value.ID)
			}
		}
	}

	return nil
}

func (p *Printer) PrintReport(source string, report integrity.Report) error {
	if p.outputType != model.OutputText {
		return p.print(&JsonReport{
			MessageType: "check",
			Source:      source,
			Problems:    nonNil(report.Problems),
			Warnings:    nonNil(report.Warnings),
		})
	}

	for _, problem := range report.Problems {
		fmt.Fprintf(p.output, "%s: error: %s\n", source, problem.Error())
	}

	for _, warning := range report.Warnings {
		fmt.Fprintf(p.output, "%s: warning: %s\n", source, warning.Error())
	}

	status := "ok"
	if len(report.Problems) > 0 {
		status = "FAILED"
	}

	fmt.Fprintf(p.output, "%s: %s (%d problems, %d warnings)\n", source, status, len(report.Problems), len(report.Warnings))
	return nil
}

func (p *Printer) PrintChanges(oldSource string, newSource string, changes []integrity.Change) error {
	if p.outputType != model.OutputText {
		return p.print(&JsonChanges{
			MessageType: "diff",
			Old:         oldSource,
			New:         newSource,
			Changes:     changes,
		})
	}

	if len(changes) == 0 {
		fmt.Fprintf(p.output, "%s and %s declare the same identifiers\n", oldSource, newSource)
		return nil
	}

	for _, change := range changes {
		fmt.Fprintln(p.output, change.String())
	}

	return nil
}

func (p *Printer) PrintSimulation(calls []engine.Call, warnings int) error {
	if p.outputType != model.OutputText {
		jsonCalls := make([]JsonCall, len(calls))
		for i, call := range calls {
			jsonCalls[i] = JsonCall{
				Op:         call.Op,
				ID:         uint32(call.ID),
				Value:      uint32(call.Value),
				GameObject: uint64(call.GameObject),
				Known:      call.Known,
			}
		}

		return p.print(&JsonSimulation{
			MessageType: "simulation",
			Calls:       jsonCalls,
			Warnings:    warnings,
		})
	}

	for _, call := range calls {
		status := "ok"
		if !call.Known {
			status = "UNKNOWN"
		}

		if call.Value != 0 {
			fmt.Fprintf(p.output, "%-16s %10d %10d  %s\n", call.Op, call.ID, call.Value, status)
		} else {
			fmt.Fprintf(p.output, "%-16s %10d %10s  %s\n", call.Op, call.ID, "", status)
		}
	}

	fmt.Fprintf(p.output, "%d calls, %d warnings\n", len(calls), warnings)
	return nil
}

//
// private functions
//

func (p *Printer) print(v any) error {
	if p.outputType == model.OutputYAML {
		yamlBytes, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshalling to yaml: %w", err)
		}

		_, err = fmt.Fprintf(p.output, "---\n%s", yamlBytes)
		return err
	}

	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshalling to json: %w", err)
	}

	_, err = fmt.Fprintln(p.output, string(jsonBytes))
	return err
}

func nonNil(problems []integrity.Problem) []integrity.Problem {
	if problems == nil {
		return make([]integrity.Problem, 0)
	}
	return problems
}
