package domain

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var categoriesJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// CategoryCount é uma categoria de avaliação com sua contagem
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ReviewCategories preserva a ordem em que as categorias aparecem no documento
// JSON do backend. Um map perderia essa ordem, então a decodificação é feita
// com o iterador do json-iterator
type ReviewCategories []CategoryCount

func (c *ReviewCategories) UnmarshalJSON(data []byte) error {
	iter := categoriesJSON.BorrowIterator(data)
	defer categoriesJSON.ReturnIterator(iter)

	categories := ReviewCategories{}
	ok := iter.ReadMapCB(func(it *jsoniter.Iterator, name string) bool {
		categories = append(categories, CategoryCount{
			Name:  name,
			Count: it.ReadInt(),
		})
		return it.Error == nil
	})

	if !ok {
		if iter.Error != nil {
			return errors.Wrap(iter.Error, "review-categories não é um objeto JSON válido")
		}
		return errors.New("review-categories não é um objeto JSON válido")
	}

	*c = categories
	return nil
}

func (c ReviewCategories) MarshalJSON() ([]byte, error) {
	stream := categoriesJSON.BorrowStream(nil)
	defer categoriesJSON.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, category := range c {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(category.Name)
		stream.WriteInt(category.Count)
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}

	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}
