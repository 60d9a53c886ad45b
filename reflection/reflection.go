// Package reflection provides helpers which inspect values at runtime.
package reflection

import (
	"reflect"
	"strings"

	"github.com/ARM-software/golang-numeric/commonerrors"
)

// IsEmpty checks whether a value is empty i.e. "", nil, 0, [], {}, false, etc.
// For Strings, a string is considered empty if it is "" or if it only contains whitespaces
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case string:
		return len(strings.TrimSpace(v)) == 0
	case *string:
		return v == nil || len(strings.TrimSpace(*v)) == 0
	case bool:
		return !v
	}
	objValue := reflect.ValueOf(value)
	switch objValue.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice:
		return objValue.Len() == 0
	case reflect.Ptr, reflect.Interface:
		if objValue.IsNil() {
			return true
		}
		return IsEmpty(objValue.Elem().Interface())
	default:
		return objValue.IsZero()
	}
}

// IsNil states whether value is nil or a nil pointer, map, slice, channel, function or interface.
func IsNil(value any) bool {
	if value == nil {
		return true
	}
	objValue := reflect.ValueOf(value)
	switch objValue.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice, reflect.UnsafePointer:
		return objValue.IsNil()
	default:
		return false
	}
}

// Cast safely casts object to type T.
// commonerrors.ErrUndefined is returned when object is nil and commonerrors.ErrUnsupported when object is not a T.
func Cast[T any](object any) (cast T, err error) {
	if IsNil(object) {
		err = commonerrors.Newf(commonerrors.ErrUndefined, "cannot cast a nil value to %T", cast)
		return
	}
	cast, ok := object.(T)
	if !ok {
		err = commonerrors.Newf(commonerrors.ErrUnsupported, "cannot cast a %T to a %v", object, TypeName[T]())
	}
	return
}

// TypeName returns the name of type T including its package prefix e.g. decimal.Decimal.
func TypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
