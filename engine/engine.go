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
// Package engine is the boundary to the sound engine runtime. The runtime
// itself lives outside this module; Engine is what game code programs
// against and NullEngine stands in for it when there is no audio output.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"wwise-ids/model"
)

// GameObject is the runtime handle of the emitter a sound plays on.
type GameObject uint64

// GlobalObject addresses calls that are not tied to an emitter.
const GlobalObject GameObject = 0

type Engine interface {
	PostEvent(ctx context.Context, event model.UniqueID, gameObject GameObject) error
	SetSwitch(ctx context.Context, group model.UniqueID, value model.UniqueID, gameObject GameObject) error
	SetState(ctx context.Context, group model.UniqueID, value model.UniqueID) error
	SetOutputDevice(ctx context.Context, device model.UniqueID) error
	SetBusVolume(ctx context.Context, bus model.UniqueID, volume float64) error
}

type Call struct {
	Op         string
	ID         model.UniqueID
	Value      model.UniqueID
	GameObject GameObject
	Volume     float64
	Known      bool
}

type valueGroup struct {
	name   string
	values map[model.UniqueID]string
}

// NullEngine accepts every call, records it and drops the audio. IDs that
// are not part of the loaded table are logged as warnings and counted; they
// never fail the call.
type NullEngine struct {
	mu sync.Mutex

	flat   map[model.Category]map[model.UniqueID]string
	groups map[model.Category]map[model.UniqueID]valueGroup

	calls    []Call
	warnings int
	device   model.UniqueID
}

func NewNullEngine(loaded *model.Table) *NullEngine {
	e := &NullEngine{
		flat:   make(map[model.Category]map[model.UniqueID]string),
		groups: make(map[model.Category]map[model.UniqueID]valueGroup),
		calls:  make([]Call, 0),
	}

	if loaded == nil {
		return e
	}

	for _, section := range loaded.Sections {
		if len(section.Entries) > 0 {
			names := make(map[model.UniqueID]string, len(section.Entries))
			for _, entry := range section.Entries {
				names[entry.ID] = entry.Name
			}
			e.flat[section.Category] = names
		}

		if len(section.Groups) > 0 {
			groups := make(map[model.UniqueID]valueGroup, len(section.Groups))
			for _, group := range section.Groups {
				values := make(map[model.UniqueID]string, len(group.Values))
				for _, value := range group.Values {
					values[value.ID] = value.Name
				}
				groups[group.ID] = valueGroup{name: group.Name, values: values}
			}
			e.groups[section.Category] = groups
		}
	}

	return e
}

func (e *NullEngine) PostEvent(ctx context.Context, event model.UniqueID, gameObject GameObject) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, known := e.lookup(model.CategoryEvents, event)
	if known {
		slog.Debug(fmt.Sprintf("engine: post event %s on %d", name, gameObject))
	}

	e.record(Call{Op: "PostEvent", ID: event, GameObject: gameObject, Known: known})
	return nil
}

func (e *NullEngine) SetSwitch(ctx context.Context, group model.UniqueID, value model.UniqueID, gameObject GameObject) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	known := e.lookupValue(model.CategorySwitches, group, value)
	e.record(Call{Op: "SetSwitch", ID: group, Value: value, GameObject: gameObject, Known: known})
	return nil
}

func (e *NullEngine) SetState(ctx context.Context, group model.UniqueID, value model.UniqueID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	known := e.lookupValue(model.CategoryStates, group, value)
	e.record(Call{Op: "SetState", ID: group, Value: value, GameObject: GlobalObject, Known: known})
	return nil
}

func (e *NullEngine) SetOutputDevice(ctx context.Context, device model.UniqueID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, known := e.lookup(model.CategoryAudioDevices, device)
	if known {
		e.mu.Lock()
		e.device = device
		e.mu.Unlock()
	}

	e.record(Call{Op: "SetOutputDevice", ID: device, Known: known})
	return nil
}

func (e *NullEngine) SetBusVolume(ctx context.Context, bus model.UniqueID, volume float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// effects can route through aux busses too
	_, known := e.lookupQuiet(model.CategoryBusses, bus)
	if !known {
		_, known = e.lookupQuiet(model.CategoryAuxBusses, bus)
	}

	if !known {
		e.warn(fmt.Sprintf("engine: unknown bus id %d, not loaded", bus))
	}

	e.record(Call{Op: "SetBusVolume", ID: bus, Volume: volume, Known: known})
	return nil
}

// Calls returns a copy of every call made so far.
func (e *NullEngine) Calls() []Call {
	e.mu.Lock()
	defer e.mu.Unlock()

	calls := make([]Call, len(e.calls))
	copy(calls, e.calls)
	return calls
}

// Warnings is the number of calls that referenced an ID the engine does not have.
func (e *NullEngine) Warnings() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.warnings
}

// OutputDevice is the last device successfully selected, zero if none.
func (e *NullEngine) OutputDevice() model.UniqueID {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.device
}

//
// private functions
//

func (e *NullEngine) record(call Call) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.calls = append(e.calls, call)
}

func (e *NullEngine) lookupQuiet(category model.Category, id model.UniqueID) (string, bool) {
	name, ok := e.flat[category][id]
	return name, ok
}

func (e *NullEngine) lookup(category model.Category, id model.UniqueID) (string, bool) {
	name, ok := e.lookupQuiet(category, id)
	if !ok {
		e.warn(fmt.Sprintf("engine: unknown %s id %d, not loaded", category, id))
	}
	return name, ok
}

func (e *NullEngine) lookupValue(category model.Category, groupID model.UniqueID, valueID model.UniqueID) bool {
	group, ok := e.groups[category][groupID]
	if !ok {
		e.warn(fmt.Sprintf("engine: unknown %s group id %d, not loaded", category, groupID))
		return false
	}

	name, ok := group.values[valueID]
	if !ok {
		e.warn(fmt.Sprintf("engine: id %d is not a value of %s::%s", valueID, category, group.name))
		return false
	}

	slog.Debug(fmt.Sprintf("engine: %s::%s set to %s", category, group.name, name))
	return true
}

func (e *NullEngine) warn(message string) {
	slog.Warn(message)

	e.mu.Lock()
	e.warnings++
	e.mu.Unlock()
}
