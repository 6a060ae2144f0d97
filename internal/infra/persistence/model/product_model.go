package model

import (
	"menumaster/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ProductModel mirrors one element of the 'products' document.
type ProductModel struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Category    string          `json:"category"`
}

func FromProduct(product *entity.Product) ProductModel {
	return ProductModel{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		Category:    product.Category,
	}
}

func (m ProductModel) ToEntity() *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
	}
}

// StarterCatalog is the default content of the 'products' document.
func StarterCatalog() []ProductModel {
	return []ProductModel{
		starter("1", "Hambúrguer Clássico", "Pão, carne, queijo, alface, tomate.", "25.50", "Hambúrguer", "burger"),
		starter("2", "Pizza Margherita", "Molho de tomate, mussarela, manjericão.", "42.00", "Pizzas", "pizza"),
		starter("3", "Salada Caesar", "Alface romana, croutons, parmesão, molho caesar.", "18.75", "Saladas", "salad"),
		starter("4", "Batata Frita", "Porção generosa de batatas fritas crocantes.", "12.00", "Acompanhamentos", "fries"),
		starter("5", "Refrigerante Lata", "Coca-Cola, Guaraná ou Fanta.", "6.00", "Sucos e Milkshakes", "soda"),
		starter("6", "Suco Natural Laranja", "Feito na hora com laranjas frescas.", "9.50", "Sucos e Milkshakes", "juice"),
		starter("7", "Cheeseburger Duplo", "Pão, duas carnes, dobro de queijo.", "32.00", "Hambúrguer", "cheeseburger"),
		starter("8", "Milkshake Chocolate", "Cremoso milkshake de chocolate.", "15.00", "Sucos e Milkshakes", "milkshake"),
		starter("9", "Pizza Pepperoni", "Molho de tomate, mussarela, pepperoni.", "45.00", "Pizzas", "pepperoni"),
		starter("10", "Salada Grega", "Pepino, tomate, cebola roxa, azeitonas, queijo feta.", "22.00", "Saladas", "greeksalad"),
	}
}

func starter(id, name, description, price, category, imageSeed string) ProductModel {
	return ProductModel{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       decimal.RequireFromString(price),
		ImageURL:    "https://picsum.photos/seed/" + imageSeed + "/400/300",
		Category:    category,
	}
}
