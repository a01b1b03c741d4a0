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

package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/maps"
)

// dotenv is a koanf.Provider over .env files. Only variables carrying the
// prefix are kept, and the process environment is never modified.
type dotenv struct {
	paths  []string
	prefix string
	delim  string
}

func dotenvProvider(prefix, delim string, paths ...string) *dotenv {
	return &dotenv{paths: paths, prefix: prefix, delim: delim}
}

// ReadBytes is not supported.
func (d *dotenv) ReadBytes() ([]byte, error) {
	return nil, errors.New("config: dotenv provider does not support ReadBytes")
}

// Read merges the files in order; later files win. Missing files are
// skipped.
func (d *dotenv) Read() (map[string]interface{}, error) {
	flat := make(map[string]interface{})
	for _, p := range d.paths {
		vars, err := godotenv.Read(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		for k, v := range vars {
			if key := envKey(d.prefix, k); key != "" {
				flat[key] = v
			}
		}
	}
	return maps.Unflatten(flat, d.delim), nil
}

// envKey turns TRAYGRID__DEFAULTS__ROTATION into defaults__rotation.
// It returns "" for names without the prefix.
func envKey(prefix, name string) string {
	if !strings.HasPrefix(name, prefix) {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(name, prefix))
}
