package response

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var errConverterSource = errors.New("src type not matching")

// Timestamps leave the API as Unix milliseconds and ids as strings.
var copyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				t, ok := src.(time.Time)
				if !ok {
					return nil, errConverterSource
				}
				return t.UnixMilli(), nil
			},
		},
		{
			SrcType: uuid.UUID{},
			DstType: "",
			Fn: func(src any) (any, error) {
				id, ok := src.(uuid.UUID)
				if !ok {
					return nil, errConverterSource
				}
				return id.String(), nil
			},
		},
	},
}

func copyInto[T any](src any) *T {
	dst := new(T)
	if err := copier.CopyWithOption(dst, src, copyOption); err != nil {
		// only a converter bug gets here
		panic(err)
	}
	return dst
}
