package render

// Template fragments selected by the branch policy. Each constant is emitted
// verbatim under its section header; substitution-bearing sections live in
// sections.go.

const stateReduxSample = "```typescript\n" + `// store/slices/counterSlice.ts
import { createSlice, PayloadAction } from '@reduxjs/toolkit';

interface CounterState {
  value: number;
}

const initialState: CounterState = { value: 0 };

export const counterSlice = createSlice({
  name: 'counter',
  initialState,
  reducers: {
    increment: (state) => {
      state.value += 1;
    },
    incrementBy: (state, action: PayloadAction<number>) => {
      state.value += action.payload;
    },
  },
});

export const { increment, incrementBy } = counterSlice.actions;
export default counterSlice.reducer;
` + "```\n"

const stateZustandSample = "```typescript\n" + `// store/useCounterStore.ts
import { create } from 'zustand';

interface CounterStore {
  value: number;
  increment: () => void;
  incrementBy: (amount: number) => void;
}

export const useCounterStore = create<CounterStore>((set) => ({
  value: 0,
  increment: () => set((state) => ({ value: state.value + 1 })),
  incrementBy: (amount) => set((state) => ({ value: state.value + amount })),
}));
` + "```\n"

const stateContextSample = "```typescript\n" + `// context/CounterContext.tsx
import { createContext, useContext, useState, ReactNode } from 'react';

interface CounterContextValue {
  value: number;
  increment: () => void;
}

const CounterContext = createContext<CounterContextValue | null>(null);

export function CounterProvider({ children }: { children: ReactNode }) {
  const [value, setValue] = useState(0);
  const increment = () => setValue((v) => v + 1);
  return (
    <CounterContext.Provider value={{ value, increment }}>
      {children}
    </CounterContext.Provider>
  );
}

export function useCounter() {
  const ctx = useContext(CounterContext);
  if (!ctx) throw new Error('useCounter must be used within CounterProvider');
  return ctx;
}
` + "```\n"

const stylingTailwindSample = "```tsx\n" + `// components/Card.tsx
export function Card({ title, children }: CardProps) {
  return (
    <div className="rounded-lg border border-gray-200 bg-white p-6 shadow-sm">
      <h3 className="mb-2 text-lg font-semibold text-gray-900">{title}</h3>
      <div className="text-sm text-gray-600">{children}</div>
    </div>
  );
}
` + "```\n\nRules:\n\n" + `- Design tokens (colors, spacing, fonts) belong in the Tailwind theme config.
- Extract repeated utility clusters into components, not @apply blocks.
- Let the Tailwind Prettier plugin own class ordering.
`

const stylingCSSModulesSample = "```tsx\n" + `// components/Card.tsx
import styles from './Card.module.css';

export function Card({ title, children }: CardProps) {
  return (
    <div className={styles.card}>
      <h3 className={styles.title}>{title}</h3>
      <div className={styles.body}>{children}</div>
    </div>
  );
}
` + "```\n\n```css\n" + `/* components/Card.module.css */
.card {
  border: 1px solid var(--color-border);
  border-radius: 8px;
  padding: 1.5rem;
}

.title {
  font-size: 1.125rem;
  font-weight: 600;
}
` + "```\n"

const stylingStyledComponentsSample = "```tsx\n" + `// components/Card.tsx
import styled from 'styled-components';

const CardWrapper = styled.div` + "`" + `
  border: 1px solid ${(p) => p.theme.colors.border};
  border-radius: 8px;
  padding: 1.5rem;
` + "`" + `;

const Title = styled.h3` + "`" + `
  font-size: 1.125rem;
  font-weight: 600;
` + "`" + `;

export function Card({ title, children }: CardProps) {
  return (
    <CardWrapper>
      <Title>{title}</Title>
      {children}
    </CardWrapper>
  );
}
` + "```\n"

const apiRESTSample = `Endpoints follow resource-oriented REST conventions:

` + "```\n" + `GET    /api/users          list users (paginated)
POST   /api/users          create a user
GET    /api/users/:id      fetch one user
PATCH  /api/users/:id      partial update
DELETE /api/users/:id      delete
` + "```\n\n" + `- Plural nouns for collections; no verbs in paths.
- Request and response bodies are validated at the boundary.
- Errors use a consistent envelope: ` + "`{ \"error\": { \"code\", \"message\" } }`" + `.
- Pagination via ` + "`?cursor=`" + ` and ` + "`?limit=`" + ` query parameters.
`

const apiGraphQLSample = `The schema is the contract; resolvers stay thin.

` + "```graphql\n" + `type User {
  id: ID!
  name: String!
  email: String!
}

type Query {
  user(id: ID!): User
  users(first: Int, after: String): UserConnection!
}

type Mutation {
  createUser(input: CreateUserInput!): CreateUserPayload!
}
` + "```\n\n" + `- Schema-first: changes start in the SDL, then resolvers.
- Connections (Relay-style) for every list that can grow.
- Mutations take one input object and return a payload type.
- Solve N+1 with dataloaders, never nested resolver queries.
`

const apiTRPCSample = "```typescript\n" + `// server/routers/user.ts
import { z } from 'zod';
import { router, publicProcedure } from '../trpc';

export const userRouter = router({
  byId: publicProcedure
    .input(z.object({ id: z.string() }))
    .query(({ input, ctx }) => ctx.db.user.findUnique({ where: { id: input.id } })),

  create: publicProcedure
    .input(z.object({ name: z.string().min(1), email: z.string().email() }))
    .mutation(({ input, ctx }) => ctx.db.user.create({ data: input })),
});
` + "```\n\n" + `- One router per domain entity, merged in the app router.
- Every procedure validates input with zod.
- Clients consume procedures through the generated hooks only.
`

const componentFolderSample = `Each component owns a folder with its tests and styles:

` + "```\n" + `components/
  Button/
    Button.tsx
    Button.test.tsx
    index.ts        # re-export only
  Card/
    Card.tsx
    Card.test.tsx
    index.ts
` + "```\n\n" + `Import components from the folder (` + "`components/Button`" + `), never from the
inner file.
`

const componentFlatSample = `Components live as flat files next to their tests:

` + "```\n" + `components/
  Button.tsx
  Button.test.tsx
  Card.tsx
  Card.test.tsx
` + "```\n\n" + `When a component needs private subcomponents or assets, promote it to a
folder at that point — not before.
`

const architectureBody = `- Features own their code: UI, hooks, and data access for one feature live
  together, not spread across technical layers.
- Shared code must earn its place: extract to a shared module only after the
  third concrete consumer.
- Dependencies point inward — UI may import domain logic, never the reverse.
- Side effects (network, storage) stay at the edges behind small interfaces.
`

const codePatternsBody = `- Prefer pure functions for logic; isolate effects at the call site.
- Early returns over nested conditionals.
- Errors are handled where context exists to act on them; everything else
  propagates.
- No commented-out code in the main branch; delete it, git remembers.
- Constants over magic values; one definition per concept.
`

const securityBody = `- Validate all external input at the boundary (requests, env vars, storage).
- Parameterize every query; string-built SQL never passes review.
- Secrets live in the environment or a secret manager — never in the repo.
- Authentication and authorization checks happen server-side; client checks
  are UX, not security.
- Keep dependencies patched; review lockfile diffs in every PR that touches
  them.
`

const performanceBody = `- Measure before optimizing; profiler evidence beats intuition.
- Ship less JavaScript: code-split routes, lazy-load below-the-fold work.
- Cache at the right layer (HTTP, data layer, memo) with explicit
  invalidation.
- Avoid N+1 data access; batch or join at the source.
- Budgets: track bundle size and core web vitals in CI once the app is live.
`

const accessibilityBody = `- Semantic HTML first; ARIA only where semantics fall short.
- All interactive elements are keyboard reachable and visibly focused.
- Images carry meaningful alt text (or empty alt when decorative).
- Color contrast meets WCAG AA; never encode meaning with color alone.
- Forms label every input; errors are announced, not just painted red.
`

const notesBody = `This rulebook was generated by rulebook and is meant to be edited.
Adjust any section to match how the team actually works, keep it in version
control, and regenerate with ` + "`rulebook generate`" + ` when the stack changes —
a backup of the previous version is written alongside the new one.
`
