package safecast

// IInteger is satisfied by every signed or unsigned integer type, including types derived from them.
type IInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IConvertable is satisfied by every Go numeric type which can be range checked: integers and floats.
// Complex numbers are not supported.
type IConvertable interface {
	IInteger | ~float32 | ~float64
}
