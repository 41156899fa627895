package utility

// OrderedMap là một map giữ nguyên thứ tự insert của keys.
// Dùng làm accumulator khi group dữ liệu theo key mà thứ tự xuất hiện đầu tiên
// là một thuộc tính đúng đắn của kết quả (không phải chỉ là cosmetic).
// Không thread-safe: chỉ dùng trong phạm vi một lần tính toán.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap tạo một OrderedMap mới
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{
		values: make(map[string]V),
	}
}

// Get lấy giá trị theo key
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set đặt giá trị cho key. Key mới được thêm vào cuối danh sách thứ tự,
// key đã tồn tại giữ nguyên vị trí ban đầu.
func (m *OrderedMap[V]) Set(key string, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// GetOrCreate lấy giá trị theo key, nếu chưa tồn tại thì tạo mới qua creator function
func (m *OrderedMap[V]) GetOrCreate(key string, creator func() V) V {
	if v, ok := m.values[key]; ok {
		return v
	}
	v := creator()
	m.Set(key, v)
	return v
}

// Len trả về số lượng keys
func (m *OrderedMap[V]) Len() int {
	return len(m.keys)
}

// Keys trả về danh sách keys theo thứ tự insert
func (m *OrderedMap[V]) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Values trả về danh sách values theo thứ tự insert của keys
func (m *OrderedMap[V]) Values() []V {
	values := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		values = append(values, m.values[k])
	}
	return values
}
