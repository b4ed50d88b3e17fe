package tpcds

import (
	"fmt"

	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/distro"
	"github.com/stormdb-contrib/tpcgen/internal/domain"
	"github.com/stormdb-contrib/tpcgen/internal/seedplan"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

const (
	itemColFlags = 8000
	itemColDesc  = 8001
	itemColPrice = 8002
	itemColBrand = 8003
	itemColClass = 8004
	itemColCat   = 8005
	itemColSize  = 8006
	itemColCont  = 8007
)

var itemSCDOffsets = domain.SCDDateOffsets{
	MinDateID:   domain.NewDateID(1998, 1, 1),
	ThirdDateID: domain.NewDateID(1999, 8, 1),
	HalfDateID:  domain.NewDateID(2000, 12, 1),
}

var itemSizes = []string{"economy", "small", "medium", "large", "extra large", "N/A"}
var itemContainers = []string{"Unknown", "Bag", "Box", "Bunch", "Bundle", "Can", "Carton", "Case"}
var itemCategories = []string{"Women", "Men", "Children", "Electronics", "Home", "Sports", "Music", "Books"}

// ItemGenerator produces the item type-2 slowly-changing dimension:
// SCDGroupSize rows share one business key, each version
// inheriting or overwriting its attributes per a per-group change-flag
// draw.
type ItemGenerator struct {
	streams *seedplan.StreamSet
	colors  *distro.Distribution
	total   int64

	groupFlags   *domain.ChangeFlags
	prevDesc     string
	prevBrand    string
	prevClass    string
	prevCategory string
}

func NewItemGenerator(opts genopts.Options) (*ItemGenerator, error) {
	store, err := distro.Load("tpcds", opts.DistributionDir)
	if err != nil {
		return nil, err
	}
	colors, err := store.Find("colors")
	if err != nil {
		return nil, err
	}
	ss := seedplan.NewStreamSet(seedplan.TPCDSSeedBase, []seedplan.ColumnSpec{
		{Name: "flags", ColumnID: itemColFlags, SeedsPerRow: 1},
		{Name: "desc", ColumnID: itemColDesc, SeedsPerRow: 30},
		{Name: "price", ColumnID: itemColPrice, SeedsPerRow: 2},
		{Name: "brand", ColumnID: itemColBrand, SeedsPerRow: 2},
		{Name: "class", ColumnID: itemColClass, SeedsPerRow: 1},
		{Name: "category", ColumnID: itemColCat, SeedsPerRow: 1},
		{Name: "size", ColumnID: itemColSize, SeedsPerRow: 1},
		{Name: "container", ColumnID: itemColCont, SeedsPerRow: 1},
	})
	return &ItemGenerator{streams: ss, colors: colors, total: itemRows(opts.ScaleFactor) * domain.SCDGroupSize}, nil
}

func (g *ItemGenerator) Schema() batch.Schema     { return itemSchema }
func (g *ItemGenerator) TotalRows() (int64, bool) { return g.total, true }

func (g *ItemGenerator) SkipTo(row int64) error {
	groupStart := domain.GroupStartRow(row + 1)
	groups := (groupStart - 1) / domain.SCDGroupSize
	g.streams.SkipRows(groups)
	g.groupFlags = nil
	return nil
}

func (g *ItemGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if rowNumber > g.total {
		return batch.Row{}, nil
	}
	pos := (rowNumber - 1) % domain.SCDGroupSize
	firstRecord := pos == 0
	if firstRecord {
		g.groupFlags = domain.NewChangeFlags(g.streams.Stream("flags"))
	}

	uniqueID := uint64((rowNumber-1)/domain.SCDGroupSize + 1)
	businessKey, recStart, recEnd, _ := domain.SetSCDKeys(uniqueID, rowNumber, itemSCDOffsets, 0)

	newDesc, err := g.drawDesc()
	if err != nil {
		return batch.Row{}, err
	}
	g.groupFlags.ChangeSCDValue(&newDesc, &g.prevDesc, firstRecord)

	priceStream := g.streams.Stream("price")
	priceCents := priceStream.NextUniform(100, 99999)
	price := domain.NewDecimal(priceCents, 2, 7)
	wholesaleCost := domain.NewDecimal(priceCents*priceStream.NextUniform(40, 80)/100, 2, 7)

	brand := fmt.Sprintf("Brand#%d", g.streams.Stream("brand").NextUniform(1, 50))
	g.groupFlags.ChangeSCDValue(&brand, &g.prevBrand, firstRecord)

	classIdx := g.streams.Stream("class").NextUniform(0, int64(len(itemCategories)-1))
	class := fmt.Sprintf("class#%d", classIdx+1)
	g.groupFlags.ChangeSCDValue(&class, &g.prevClass, firstRecord)

	category := itemCategories[classIdx]
	g.groupFlags.ChangeSCDValue(&category, &g.prevCategory, firstRecord)

	sizeIdx := g.streams.Stream("size").NextUniform(0, int64(len(itemSizes)-1))
	contIdx := g.streams.Stream("container").NextUniform(0, int64(len(itemContainers)-1))

	if pos == domain.SCDGroupSize-1 {
		if err := g.streams.ConsumeRemaining(); err != nil {
			return batch.Row{}, err
		}
	}

	row := batch.NewRow(len(itemSchema.Fields))
	row.Set(0, rowNumber)
	row.Set(1, businessKey)
	row.Set(2, recStart)
	row.Set(3, recEnd)
	row.Set(4, newDesc)
	row.Set(5, price)
	row.Set(6, wholesaleCost)
	row.Set(7, brand)
	row.Set(8, class)
	row.Set(9, category)
	row.Set(10, itemSizes[sizeIdx])
	row.Set(11, itemContainers[contIdx])
	return row, nil
}

func (g *ItemGenerator) drawDesc() (string, error) {
	return fmt.Sprintf("item description #%d", g.streams.Stream("desc").NextUniform(1, 1_000_000)), nil
}
