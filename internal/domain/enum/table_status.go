package enum

import (
	"encoding/json"
)

// TableStatus represents the state of a table on the sales floor
type TableStatus int

const (
	TableStatusEmpty    TableStatus = 0
	TableStatusPending  TableStatus = 1
	TableStatusSelected TableStatus = 2
)

func (s TableStatus) String() string {
	return [...]string{"Empty", "Pending", "Selected"}[s]
}

func (s TableStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *TableStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = TableStatus(i)
		return nil
	}
	switch str {
	case "Empty":
		*s = TableStatusEmpty
	case "Pending":
		*s = TableStatusPending
	case "Selected":
		*s = TableStatusSelected
	}
	return nil
}
