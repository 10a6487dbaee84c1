package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PrettyJson serializa o valor com indentação, para saída de CLI e logs de
// depuração. Erros de serialização viram uma string vazia, nunca um pânico.
func PrettyJson(in any) string {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		buffer, err = json.Marshal(in)
		if err != nil {
			fmt.Println(err)
			return ""
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buffer, "", "\t"); err != nil {
		fmt.Println(err)
		return ""
	}

	return out.String()
}
