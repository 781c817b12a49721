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
// Package reaper coordinates shutdown of the long running commands. Workers
// register by name and report when they are done; Reap runs the registered
// callbacks newest first.
package reaper

import (
	"log/slog"
	"slices"
	"sync"
)

type callback struct {
	name         string
	callbackFunc func()
}

type Reaper struct {
	mu            sync.Mutex
	reapRequested chan bool
	callbacks     []callback
	registrations []string
	waitgroup     sync.WaitGroup
}

var defaultReaper = New()

func New() *Reaper {
	return &Reaper{
		reapRequested: make(chan bool, 1),
		callbacks:     make([]callback, 0),
		registrations: make([]string, 0),
	}
}

func (r *Reaper) Reaped() bool {
	return len(r.reapRequested) > 0
}

func (r *Reaper) Reap() {
	select {
	case r.reapRequested <- true:
	default:
		return
	}

	r.mu.Lock()
	callbacksReversed := slices.Clone(r.callbacks)
	r.mu.Unlock()
	slices.Reverse(callbacksReversed)

	for _, callback := range callbacksReversed {
		slog.Debug("reaper: calling reap callback for '" + callback.name + "'")
		callback.callbackFunc()
	}
}

func (r *Reaper) Callback(name string, callbackFunc func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.callbacks = append(r.callbacks, callback{
		name:         name,
		callbackFunc: callbackFunc,
	})
}

func (r *Reaper) Register(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.Contains(r.registrations, name) {
		slog.Warn("reaper: already registered '" + name + "'")
		return
	}

	r.registrations = append(r.registrations, name)
	r.waitgroup.Add(1)
	slog.Debug("reaper: registered '" + name + "'")
}

func (r *Reaper) Done(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !slices.Contains(r.registrations, name) {
		slog.Warn("reaper: already done or doesn't exist: '" + name + "'")
		return
	}

	r.registrations = slices.DeleteFunc(r.registrations, func(test string) bool {
		return test == name
	})

	slog.Debug("reaper: done: '" + name + "'")
	r.waitgroup.Done()
}

func (r *Reaper) Wait() {
	r.waitgroup.Wait()
}

//
// package level reaper used by the commands
//

func Reaped() bool {
	return defaultReaper.Reaped()
}

func Reap() {
	defaultReaper.Reap()
}

func Callback(name string, callbackFunc func()) {
	defaultReaper.Callback(name, callbackFunc)
}

func Register(name string) {
	defaultReaper.Register(name)
}

func Done(name string) {
	defaultReaper.Done(name)
}

func Wait() {
	defaultReaper.Wait()
}
