package session

// Cart はセッション内のカート（商品ID → 数量）。
// 数量は常に正。0以下は「入っていない」と同じ扱い。
type Cart map[int64]int64

// Add は数量を1増やす（無ければ1で作る）。
func (c Cart) Add(productID int64) {
	c[productID]++
}

// Remove は明細ごと削除する（数量を減らすのではない）。無ければ何もしない。
func (c Cart) Remove(productID int64) {
	delete(c, productID)
}

// Quantity は数量を返す。無ければ0。
func (c Cart) Quantity(productID int64) int64 {
	return c[productID]
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// Copy はカートの複製を返す。セッションストアに入れた値を
// 呼び出し側が後から書き換えないようにするため。
func (c Cart) Copy() Cart {
	out := make(Cart, len(c))
	for pid, qty := range c {
		if qty > 0 {
			out[pid] = qty
		}
	}
	return out
}
