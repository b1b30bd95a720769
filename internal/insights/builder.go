package insights

import (
	"cmp"
	"course_insights_backend/internal/model"
	"course_insights_backend/internal/util"
	"slices"
	"strings"
)

// 构建阶段的累加器。每一层都是 "ID → 节点" 的映射加一个首次出现顺序的切片，
// 通过 getOrCreate 实现"不存在则插入，存在则取回"：首次出现的行决定元数据，后续行只能追加子节点。

type courseAcc struct {
	chapters []*chapterAcc
	byID     map[model.ID]*chapterAcc
}

type chapterAcc struct {
	id    model.ID
	no    float64
	name  string
	units []*unitAcc
	byID  map[model.ID]*unitAcc
}

type unitAcc struct {
	id           model.ID
	no           float64
	name         string
	activities   []*activityAcc
	activityByID map[model.ID]*activityAcc
	users        []*userAcc
	userByID     map[model.ID]*userAcc
}

type activityAcc struct {
	id     model.ID
	typeID model.ID
	name   string
	tree   *conceptTree
}

type userAcc struct {
	id         model.ID
	name       string
	completion float64
	accuracy   float64
	timeSpent  int64
	hasTime    bool
	perfs      []*performanceAcc
	perfByID   map[model.ID]*performanceAcc
}

type performanceAcc struct {
	activityID model.ID
	name       string
	accuracy   float64
	attempts   float64
	tree       *conceptTree
}

// conceptTree 分类(按名称) → 组件/父概念(按 ID) → 元素/概念(按 ID)
type conceptTree struct {
	categories []*categoryAcc
	byName     map[string]*categoryAcc
}

type categoryAcc struct {
	name       string
	components []*componentAcc
	byID       map[model.ID]*componentAcc
}

type componentAcc struct {
	id       model.ID
	name     string
	elements []*elementAcc
	byID     map[model.ID]*elementAcc
}

type elementAcc struct {
	id       model.ID
	name     string
	accuracy float64
	// samples 仅用于活动的全体学员视图：每个学员对该元素的首次观测
	samples []float64
}

// Build 将宽表构建为课程层级。输入为空时返回 util.ErrNoData，调用方需用 errors.Is 判断后提示"暂无数据"。
func Build(records []model.FlatRecord, opts Options) (*model.Course, error) {
	if len(records) == 0 {
		return nil, util.ErrNoData
	}

	acc := newCourseAcc()
	for i := range records {
		acc.add(&records[i])
	}
	acc.sort()

	return finalize(acc, opts.normalized()), nil
}

func newCourseAcc() *courseAcc {
	return &courseAcc{byID: make(map[model.ID]*chapterAcc)}
}

// add 处理单行。某一层级 ID 缺失时停止向下构建，不影响已构建的上层节点。
func (c *courseAcc) add(r *model.FlatRecord) {
	if r.ChapterID.Empty() {
		return
	}
	chapter := c.chapter(r)

	if r.UnitID.Empty() {
		return
	}
	unit := chapter.unit(r)

	var activity *activityAcc
	var cohortElem *elementAcc
	key := r.ActivityKey()
	if !key.Empty() {
		activity = unit.activity(key, r)
		if !r.ConceptID.Empty() {
			cohortElem, _ = activity.tree.insert(r)
		}
	}

	if r.UserID.Empty() {
		return
	}
	user := unit.user(r)

	if activity == nil {
		return
	}
	perf := user.performance(key, r)

	if r.ConceptID.Empty() {
		return
	}
	if elem, created := perf.tree.insert(r); created {
		cohortElem.samples = append(cohortElem.samples, elem.accuracy)
	}
}

func (c *courseAcc) chapter(r *model.FlatRecord) *chapterAcc {
	if ch, ok := c.byID[r.ChapterID]; ok {
		return ch
	}
	ch := &chapterAcc{
		id:   r.ChapterID,
		no:   r.ChapterNo.Float(),
		name: r.ChapterName,
		byID: make(map[model.ID]*unitAcc),
	}
	c.byID[ch.id] = ch
	c.chapters = append(c.chapters, ch)
	return ch
}

func (ch *chapterAcc) unit(r *model.FlatRecord) *unitAcc {
	if u, ok := ch.byID[r.UnitID]; ok {
		return u
	}
	u := &unitAcc{
		id:           r.UnitID,
		no:           r.UnitNo.Float(),
		name:         r.UnitName,
		activityByID: make(map[model.ID]*activityAcc),
		userByID:     make(map[model.ID]*userAcc),
	}
	ch.byID[u.id] = u
	ch.units = append(ch.units, u)
	return u
}

func (u *unitAcc) activity(key model.ID, r *model.FlatRecord) *activityAcc {
	if a, ok := u.activityByID[key]; ok {
		return a
	}
	a := &activityAcc{
		id:     key,
		typeID: r.ActivityTypeID,
		name:   activityName(key, r),
		tree:   newConceptTree(),
	}
	u.activityByID[key] = a
	u.activities = append(u.activities, a)
	return a
}

func (u *unitAcc) user(r *model.FlatRecord) *userAcc {
	if usr, ok := u.userByID[r.UserID]; ok {
		return usr
	}
	usr := &userAcc{
		id:         r.UserID,
		name:       r.UserName,
		completion: r.UnitCompletion.Float(),
		accuracy:   r.UnitAccuracy.Float(),
		perfByID:   make(map[model.ID]*performanceAcc),
	}
	if r.UnitTimeSpent != nil {
		usr.timeSpent = r.UnitTimeSpent.Seconds()
		usr.hasTime = true
	}
	u.userByID[usr.id] = usr
	u.users = append(u.users, usr)
	return usr
}

// performance 学员与活动首次同时出现时才创建表现记录
func (usr *userAcc) performance(key model.ID, r *model.FlatRecord) *performanceAcc {
	if p, ok := usr.perfByID[key]; ok {
		return p
	}
	p := &performanceAcc{
		activityID: key,
		name:       activityName(key, r),
		accuracy:   r.ActivityAccuracy.Float(),
		attempts:   r.ActivityAttempts.Float(),
		tree:       newConceptTree(),
	}
	usr.perfByID[key] = p
	usr.perfs = append(usr.perfs, p)
	return p
}

func activityName(key model.ID, r *model.FlatRecord) string {
	if name := strings.TrimSpace(r.ActivityTypeName); name != "" {
		return name
	}
	return key.String()
}

func newConceptTree() *conceptTree {
	return &conceptTree{byName: make(map[string]*categoryAcc)}
}

// insert 按 分类 → 组件 → 元素 逐层去重插入，返回元素以及该元素是否为本次新建
func (t *conceptTree) insert(r *model.FlatRecord) (*elementAcc, bool) {
	name := strings.TrimSpace(r.ConceptCategory)
	if name == "" {
		name = UncategorizedCategory
	}
	cat, ok := t.byName[name]
	if !ok {
		cat = &categoryAcc{name: name, byID: make(map[model.ID]*componentAcc)}
		t.byName[name] = cat
		t.categories = append(t.categories, cat)
	}

	// 没有父概念时，概念自身作为组件
	compID, compName := r.ParentConceptID, r.ParentConceptName
	if compID.Empty() {
		compID, compName = r.ConceptID, r.ConceptName
	}
	comp, ok := cat.byID[compID]
	if !ok {
		comp = &componentAcc{id: compID, name: compName, byID: make(map[model.ID]*elementAcc)}
		cat.byID[compID] = comp
		cat.components = append(cat.components, comp)
	}

	if elem, ok := comp.byID[r.ConceptID]; ok {
		return elem, false
	}
	elem := &elementAcc{
		id:       r.ConceptID,
		name:     r.ConceptName,
		accuracy: r.ConceptAccuracy.Float(),
	}
	comp.byID[elem.id] = elem
	comp.elements = append(comp.elements, elem)
	return elem, true
}

// sort 章节、单元按编号升序（稳定排序），其余序列保持首次出现顺序
func (c *courseAcc) sort() {
	slices.SortStableFunc(c.chapters, func(a, b *chapterAcc) int {
		return cmp.Compare(a.no, b.no)
	})
	for _, ch := range c.chapters {
		slices.SortStableFunc(ch.units, func(a, b *unitAcc) int {
			return cmp.Compare(a.no, b.no)
		})
	}
}
