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

package core

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"reflect"
)

// alphabet is used by Gensym.
var alphabet = []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

// Gensym makes a random string of the given length.
func Gensym(n int) string {
	bs := make([]byte, n)
	for i := 0; i < len(bs); i++ {
		bs[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(bs)
}

// Canonicalize round-trips a value through JSON so that equal values
// arriving from different sources (Go literals, YAML, ECMAScript)
// look the same: numbers become float64, maps become
// map[string]interface{}, and so on.
func Canonicalize(x interface{}) (interface{}, error) {
	var err error

	js, err := json.Marshal(&x)
	if err != nil {
		return nil, err
	}
	var y interface{}
	if err = json.Unmarshal(js, &y); err != nil {
		return nil, err
	}

	return y, nil
}

// fudge is a hack to cast numbers to float64s.
func fudge(x interface{}) interface{} {
	switch vv := x.(type) {
	case float64:
		return vv
	case float32:
		return float64(vv)
	case int:
		return float64(vv)
	case int32:
		return float64(vv)
	case int64:
		return float64(vv)
	case uint:
		return float64(vv)
	case uint64:
		return float64(vv)
	}
	return x
}

// Equal reports whether two case values are equal.
//
// Numbers of any width compare as float64s, so a case declared with 2
// matches a dispatch of int64(2) or of 2.0 parsed from JSON.  Other
// scalars and strings compare by Go equality.  Anything uncomparable
// falls back to reflect.DeepEqual.
func Equal(x, y interface{}) bool {
	x, y = fudge(x), fudge(y)
	switch x.(type) {
	case nil, bool, string, float64:
		return x == y
	}
	return reflect.DeepEqual(x, y)
}

// stringify renders a case value for error messages.
func stringify(x interface{}) string {
	js, err := json.Marshal(&x)
	if err != nil {
		return fmt.Sprintf("%#v", x)
	}
	return string(js)
}
