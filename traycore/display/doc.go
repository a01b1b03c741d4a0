/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package display presents a rotated tray to a user interface.
//
// A View answers the questions a tray widget asks: what to draw in each
// cell, which labels go on the edges, which well was clicked, and where a
// given well is on screen. It holds no rendering code; every answer comes
// from package transform.
//
// View.Snapshot freezes a view, highlights included, into a Snapshot model
// that encodes to JSON or YAML for renderers outside the process.
package display
