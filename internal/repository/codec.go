package repository

import (
	"errors"

	"github.com/bytedance/sonic"
)

// Documents are stored as JSON blobs. ConfigStd mirrors encoding/json output
// so the blobs stay readable by other tools.
var docAPI = sonic.ConfigStd

func EncodeDoc(v any) ([]byte, error) {
	data, err := docAPI.Marshal(v)
	if err != nil {
		return nil, errors.New("encoding document error: " + err.Error())
	}
	return data, nil
}

func DecodeDoc[T any](data []byte) (*T, error) {
	var v T
	if err := docAPI.Unmarshal(data, &v); err != nil {
		return nil, errors.New("decoding document error: " + err.Error())
	}
	return &v, nil
}
